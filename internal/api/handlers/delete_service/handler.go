package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/service/catalog"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingProfessionalID = "отсутствует ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgNotFound              = "услуга не найдена"
)

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

// Handle DELETE /api/v1/professionals/{professionalId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/services/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	authID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /professionals/{id}/services/{id} - Missing professional ID in context")
		handlers.RespondUnauthorized(w, msgMissingProfessionalID)
		return
	}
	if authID != professionalID {
		h.logger.Warn("DELETE /professionals/{id}/services/{id} - Access denied: auth_id=%d, professional_id=%d",
			authID, professionalID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Delete(r.Context(), professionalID, serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /professionals/{id}/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id}/services/{id} - Failed to delete service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/services/{id} - Service deleted successfully: service_id=%d, professional_id=%d",
		serviceID, professionalID)
	w.WriteHeader(http.StatusNoContent)
}
