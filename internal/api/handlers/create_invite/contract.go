package create_invite

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

type InviteService interface {
	Create(ctx context.Context, req *models.CreateInviteRequest) (*models.InviteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
