package invites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	inviteRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/invite"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

// Service сервис для работы с приглашениями клиентов
type Service struct {
	inviteRepo       InviteRepository
	professionalRepo ProfessionalRepository
	ttl              time.Duration
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса приглашений.
// ttlDays задает срок жизни приглашения в днях.
func NewService(
	inviteRepo InviteRepository,
	professionalRepo ProfessionalRepository,
	ttlDays int,
	logger Logger,
) *Service {
	if ttlDays <= 0 {
		ttlDays = domain.DefaultInviteTTLDays
	}

	return &Service{
		inviteRepo:       inviteRepo,
		professionalRepo: professionalRepo,
		ttl:              time.Duration(ttlDays) * 24 * time.Hour,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Create выпускает новое приглашение с uuid-кодом
func (s *Service) Create(ctx context.Context, req *models.CreateInviteRequest) (*models.InviteResponse, error) {
	s.logger.Info("Create: issuing invite for professional=%d", req.ProfessionalID)

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	if _, err := s.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Create: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Create: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	inv := &domain.ClientInvite{
		Code:           uuid.NewString(),
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ExpiresAt:      now.Add(s.ttl),
	}

	created, err := s.inviteRepo.Create(ctx, inv)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: issued invite id=%d code=%s for professional=%d",
		created.ID, created.Code, req.ProfessionalID)
	return models.FromDomainInvite(created, now), nil
}

// List возвращает все приглашения со статусом на текущий момент
func (s *Service) List(ctx context.Context) (*models.InviteListResponse, error) {
	s.logger.Info("List: fetching all invites")

	invites, err := s.inviteRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInviteList(invites, s.timeProvider.Now()), nil
}

// Delete отзывает приглашение
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: revoking invite id=%d", id)

	if err := s.inviteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, inviteRepo.ErrInviteNotFound) {
			s.logger.Warn("Delete: invite id=%d not found", id)
			return ErrInviteNotFound
		}
		s.logger.Error("Delete: repository error for invite id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: revoked invite id=%d", id)
	return nil
}

// Resolve разрешает код приглашения в данные профессионала и помечает
// приглашение использованным. Повторное использование кода отклоняется.
func (s *Service) Resolve(ctx context.Context, code string) (*models.ResolveInviteResponse, error) {
	s.logger.Info("Resolve: resolving invite code=%s", code)

	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	inv, err := s.inviteRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, inviteRepo.ErrInviteNotFound) {
			s.logger.Warn("Resolve: invite code=%s not found", code)
			return nil, ErrInviteNotFound
		}
		s.logger.Error("Resolve: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if !inv.IsRedeemableAt(now) {
		s.logger.Warn("Resolve: invite code=%s is %s", code, inv.StatusAt(now))
		return nil, ErrInviteNotRedeemable
	}

	prof, err := s.professionalRepo.GetByID(ctx, inv.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Resolve: professional id=%d not found for invite code=%s", inv.ProfessionalID, code)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Resolve: failed to get professional id=%d: %v", inv.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if err := s.inviteRepo.MarkUsed(ctx, code, now); err != nil {
		// Конкурентный запрос успел использовать код первым
		if errors.Is(err, inviteRepo.ErrInviteNotFound) {
			s.logger.Warn("Resolve: invite code=%s already used", code)
			return nil, ErrInviteNotRedeemable
		}
		s.logger.Error("Resolve: failed to mark invite code=%s used: %v", code, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: invite code=%s resolved to professional=%d", code, prof.ID)
	return &models.ResolveInviteResponse{
		Code:             inv.Code,
		ProfessionalID:   prof.ID,
		ProfessionalSlug: prof.Slug,
		BusinessName:     prof.BusinessName,
		ClientName:       inv.ClientName,
	}, nil
}

// CleanupExpired удаляет просроченные неиспользованные приглашения.
// Вызывается по cron-расписанию из main.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	deleted, err := s.inviteRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("CleanupExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpired: removed %d expired invites", deleted)
	}
	return deleted, nil
}
