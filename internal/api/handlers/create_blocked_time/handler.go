package create_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/service/schedule"
	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingProfessionalID = "отсутствует ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "некорректные данные блокировки"
	msgInvalidTimeRange      = "время начала должно быть раньше времени окончания"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "12:00"
	EndTime   string  `json:"endTime"`   // "13:00"
	Reason    *string `json:"reason,omitempty"`
}

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

// Handle POST /api/v1/professionals/{professionalId}/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/blocked-times - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals/{id}/blocked-times - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("POST /professionals/{id}/blocked-times - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals/{id}/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlockedTime(r.Context(), &models.CreateBlockedTimeRequest{
		ProfessionalID: professionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /professionals/{id}/blocked-times - Invalid time range: professional_id=%d, %s-%s",
				professionalID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /professionals/{id}/blocked-times - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /professionals/{id}/blocked-times - Failed to create blocked time: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/blocked-times - Blocked time created successfully: blocked_time_id=%d, professional_id=%d",
		result.ID, professionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
