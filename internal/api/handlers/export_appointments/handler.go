package export_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/internal/service/appointments"
	"github.com/meuagendamento/scheduling-service/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingProfessionalID = "отсутствует ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter         = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments/export
// Query params: date (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments/export - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/appointments/export - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("GET /professionals/{id}/appointments/export - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetAppointmentsRequest{ProfessionalID: professionalID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments/export - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	csvData, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments/export - Invalid filter: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /professionals/{id}/appointments/export - Failed to export: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments/export - Export generated successfully: professional_id=%d",
		professionalID)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agendamentos.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}
