package create_blocked_time

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
