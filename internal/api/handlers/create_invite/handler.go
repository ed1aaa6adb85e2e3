package create_invite

import (
	"errors"
	"net/http"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
	"github.com/meuagendamento/scheduling-service/internal/service/invites"
	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные приглашения"
	msgProfessionalNotFound = "профессионал не найден"
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

// Handle POST /api/v1/invites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInviteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, invites.ErrProfessionalNotFound):
			h.logger.Warn("POST /invites - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, invites.ErrInvalidInput):
			h.logger.Warn("POST /invites - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /invites - Failed to create invite: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invites - Invite created successfully: invite_id=%d, professional_id=%d",
		result.ID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
