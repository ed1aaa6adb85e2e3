package create_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/service/catalog"
	"github.com/meuagendamento/scheduling-service/internal/service/catalog/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingProfessionalID = "отсутствует ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "некорректные данные услуги"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Color           string  `json:"color,omitempty"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/professionals/{professionalId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/services - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals/{id}/services - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("POST /professionals/{id}/services - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateServiceRequest{
		ProfessionalID:  professionalID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Color:           req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /professionals/{id}/services - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /professionals/{id}/services - Failed to create service: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/services - Service created successfully: service_id=%d, professional_id=%d",
		result.ID, professionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
