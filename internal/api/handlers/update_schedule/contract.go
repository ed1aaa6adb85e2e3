package update_schedule

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeekSchedule(ctx context.Context, req *models.UpdateWeekScheduleRequest) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
