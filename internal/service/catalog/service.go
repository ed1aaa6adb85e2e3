package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
	"github.com/meuagendamento/scheduling-service/internal/service/catalog/models"
)

// Service сервис для управления каталогом услуг профессионала
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%s for professional=%d", req.Name, req.ProfessionalID)

	svc := req.ToDomain()
	if err := validateService(svc); err != nil {
		s.logger.Warn("Create: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainService(created), nil
}

// GetProfessionalServices получает все услуги профессионала
func (s *Service) GetProfessionalServices(ctx context.Context, professionalID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("GetProfessionalServices: fetching services for professional=%d", professionalID)

	services, err := s.serviceRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetProfessionalServices: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Update обновляет услугу.
// Изменение длительности или цены не затрагивает уже созданные записи:
// они хранят денормализованную копию данных услуги.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d for professional=%d", id, req.ProfessionalID)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if svc.ProfessionalID != req.ProfessionalID {
		s.logger.Warn("Update: access denied for professional=%d to service id=%d", req.ProfessionalID, id)
		return nil, ErrAccessDenied
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}

	if err := validateService(svc); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found during update", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated service id=%d for professional=%d", id, req.ProfessionalID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу.
// Существующие записи сохраняют денормализованное название и цену услуги.
func (s *Service) Delete(ctx context.Context, professionalID, id int64) error {
	s.logger.Info("Delete: deleting service id=%d for professional=%d", id, professionalID)

	if err := s.serviceRepo.Delete(ctx, professionalID, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found for professional=%d", id, professionalID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted service id=%d for professional=%d", id, professionalID)
	return nil
}

// validateService проверяет бизнес-ограничения услуги
func validateService(svc *domain.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if !svc.HasValidDuration() {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
