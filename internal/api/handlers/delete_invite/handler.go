package delete_invite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/service/invites"
)

const (
	msgInvalidInviteID = "некорректный ID приглашения"
	msgNotFound        = "приглашение не найдено"
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

// Handle DELETE /api/v1/invites/{inviteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	inviteID, err := strconv.ParseInt(vars["inviteId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /invites/{id} - Invalid invite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInviteID)
		return
	}

	if err := h.service.Delete(r.Context(), inviteID); err != nil {
		switch {
		case errors.Is(err, invites.ErrInviteNotFound):
			h.logger.Warn("DELETE /invites/{id} - Invite not found: invite_id=%d", inviteID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /invites/{id} - Failed to delete invite: invite_id=%d, error=%v", inviteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /invites/{id} - Invite deleted successfully: invite_id=%d", inviteID)
	w.WriteHeader(http.StatusNoContent)
}
