package invites

import (
	"context"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
)

// InviteRepository интерфейс репозитория приглашений
type InviteRepository interface {
	Create(ctx context.Context, inv *domain.ClientInvite) (*domain.ClientInvite, error)
	GetByCode(ctx context.Context, code string) (*domain.ClientInvite, error)
	GetAll(ctx context.Context) ([]*domain.ClientInvite, error)
	MarkUsed(ctx context.Context, code string, usedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
