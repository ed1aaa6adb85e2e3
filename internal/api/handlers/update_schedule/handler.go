package update_schedule

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
	msgInvalidInput          = "некорректные данные расписания"
	msgInvalidTimeRange      = "время начала должно быть раньше времени окончания"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Monday    models.DayScheduleInput `json:"monday"`
	Tuesday   models.DayScheduleInput `json:"tuesday"`
	Wednesday models.DayScheduleInput `json:"wednesday"`
	Thursday  models.DayScheduleInput `json:"thursday"`
	Friday    models.DayScheduleInput `json:"friday"`
	Saturday  models.DayScheduleInput `json:"saturday"`
	Sunday    models.DayScheduleInput `json:"sunday"`
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

// Handle PUT /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/schedule - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("PUT /professionals/{id}/schedule - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeekSchedule(r.Context(), &models.UpdateWeekScheduleRequest{
		ProfessionalID: professionalID,
		Monday:         req.Monday,
		Tuesday:        req.Tuesday,
		Wednesday:      req.Wednesday,
		Thursday:       req.Thursday,
		Friday:         req.Friday,
		Saturday:       req.Saturday,
		Sunday:         req.Sunday,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid time range: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /professionals/{id}/schedule - Failed to update schedule: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/schedule - Schedule updated successfully: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
