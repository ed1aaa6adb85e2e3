package resolve_invite

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

type InviteService interface {
	Resolve(ctx context.Context, code string) (*models.ResolveInviteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
