package create_appointment

import (
	"errors"
	"net/http"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	createAppointment "github.com/meuagendamento/scheduling-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateFormat    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessionalNotFound = "профессионал не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalClosed   = "профессионал не работает в выбранную дату"
	msgInvalidDate          = "некорректная дата записи"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: slug=%s, date=%s, start=%s",
				req.ProfessionalSlug, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: slug=%s", req.ProfessionalSlug)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: slug=%s, service_id=%d",
				req.ProfessionalSlug, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalClosed):
			h.logger.Warn("POST /appointments - Professional closed: slug=%s, date=%s",
				req.ProfessionalSlug, req.Date)
			handlers.RespondBadRequest(w, msgProfessionalClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: slug=%s, date=%s", req.ProfessionalSlug, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: slug=%s, date=%s, start=%s",
				req.ProfessionalSlug, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: slug=%s, service_id=%d, error=%v",
				req.ProfessionalSlug, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, professional_id=%d, date=%s, start=%s",
		result.ID, result.ProfessionalID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
