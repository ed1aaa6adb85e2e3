package get_professional

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/professionals/models"
)

type ProfessionalService interface {
	GetProfile(ctx context.Context, slug string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
