package get_invites

import (
	"net/http"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
)

type Handler struct {
	service InviteService
	logger  Logger
}

func NewHandler(service InviteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/invites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /invites - Failed to list invites: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /invites - Invites retrieved successfully: count=%d", len(result.Invites))
	handlers.RespondJSON(w, http.StatusOK, result)
}
