package get_invites

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

type InviteService interface {
	List(ctx context.Context) (*models.InviteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
