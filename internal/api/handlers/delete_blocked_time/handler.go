package delete_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidBlockedTimeID  = "некорректный ID блокировки"
	msgMissingProfessionalID = "отсутствует ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgNotFound              = "блокировка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/professionals/{professionalId}/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/blocked-times/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	blockedTimeID, err := strconv.ParseInt(vars["blockedTimeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/blocked-times/{id} - Invalid blocked time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedTimeID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /professionals/{id}/blocked-times/{id} - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("DELETE /professionals/{id}/blocked-times/{id} - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.DeleteBlockedTime(r.Context(), professionalID, blockedTimeID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedTimeNotFound):
			h.logger.Warn("DELETE /professionals/{id}/blocked-times/{id} - Blocked time not found: blocked_time_id=%d",
				blockedTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id}/blocked-times/{id} - Failed to delete blocked time: blocked_time_id=%d, error=%v",
				blockedTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/blocked-times/{id} - Blocked time deleted successfully: blocked_time_id=%d, professional_id=%d",
		blockedTimeID, professionalID)
	w.WriteHeader(http.StatusNoContent)
}
