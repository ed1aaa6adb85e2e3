package get_blocked_times

import (
	"context"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetBlockedTimes(ctx context.Context, professionalID int64, date time.Time) (*models.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
