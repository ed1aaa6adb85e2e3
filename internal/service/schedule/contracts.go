package schedule

import (
	"context"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetWeekSchedule(ctx context.Context, professionalID int64) (*domain.WeekSchedule, error)
	UpsertWeekSchedule(ctx context.Context, schedule *domain.WeekSchedule) error
}

// BlockedTimeRepository интерфейс репозитория блокировок времени
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, professionalID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
