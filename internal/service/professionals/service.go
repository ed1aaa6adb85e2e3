package professionals

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/internal/service/professionals/models"
)

// Service сервис публичного профиля профессионала
type Service struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// GetProfile получает публичный профиль профессионала с каталогом услуг
func (s *Service) GetProfile(ctx context.Context, slug string) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile slug=%s", slug)

	prof, err := s.professionalRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetProfile: professional slug=%s not found", slug)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetProfile: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.GetByProfessional(ctx, prof.ID)
	if err != nil {
		s.logger.Error("GetProfile: failed to get services for professional=%d: %v", prof.ID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfile: profile slug=%s fetched with %d services", slug, len(services))
	return models.FromDomain(prof, services), nil
}
