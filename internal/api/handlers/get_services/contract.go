package get_services

import (
	"context"

	"github.com/meuagendamento/scheduling-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetProfessionalServices(ctx context.Context, professionalID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
