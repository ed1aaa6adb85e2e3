package get_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/service/professionals"
)

const (
	msgMissingSlug = "slug профессионала обязателен"
	msgNotFound    = "профессионал не найден"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /professionals/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{slug} - Professional not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /professionals/{slug} - Failed to get profile: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{slug} - Profile retrieved successfully: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
