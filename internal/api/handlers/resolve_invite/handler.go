package resolve_invite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/service/invites"
)

const (
	msgMissingCode         = "код приглашения обязателен"
	msgInviteNotFound      = "приглашение не найдено"
	msgInviteNotRedeemable = "приглашение просрочено или уже использовано"
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

// Handle GET /api/v1/invites/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	if code == "" {
		h.logger.Warn("GET /invites/{code} - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.Resolve(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, invites.ErrInviteNotFound),
			errors.Is(err, invites.ErrProfessionalNotFound):
			h.logger.Warn("GET /invites/{code} - Invite not found: code=%s", code)
			handlers.RespondNotFound(w, msgInviteNotFound)

		case errors.Is(err, invites.ErrInviteNotRedeemable):
			h.logger.Warn("GET /invites/{code} - Invite not redeemable: code=%s", code)
			handlers.RespondError(w, http.StatusGone, msgInviteNotRedeemable)

		default:
			h.logger.Error("GET /invites/{code} - Failed to resolve invite: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invites/{code} - Invite resolved successfully: code=%s, professional_id=%d",
		code, result.ProfessionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
