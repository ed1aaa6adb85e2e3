package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	blockedTimeRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/blockedtime"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// Service сервис для управления расписанием и блокировками времени
type Service struct {
	professionalRepo ProfessionalRepository
	blockedTimeRepo  BlockedTimeRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	professionalRepo ProfessionalRepository,
	blockedTimeRepo BlockedTimeRepository,
	logger Logger,
) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		blockedTimeRepo:  blockedTimeRepo,
		logger:           logger,
	}
}

// GetWeekSchedule получает недельное расписание профессионала.
// Если расписание ещё не сохранено, возвращает расписание по умолчанию.
func (s *Service) GetWeekSchedule(ctx context.Context, professionalID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: fetching schedule for professional=%d", professionalID)

	schedule, err := s.professionalRepo.GetWeekSchedule(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrScheduleNotFound) {
			s.logger.Info("GetWeekSchedule: no stored schedule for professional=%d, using default", professionalID)
			return models.FromDomainWeekSchedule(domain.DefaultWeekSchedule(professionalID)), nil
		}
		s.logger.Error("GetWeekSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeekSchedule(schedule), nil
}

// UpdateWeekSchedule заменяет недельное расписание профессионала
func (s *Service) UpdateWeekSchedule(ctx context.Context, req *models.UpdateWeekScheduleRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("UpdateWeekSchedule: updating schedule for professional=%d", req.ProfessionalID)

	schedule := req.ToDomain()
	if err := validateWeekSchedule(schedule); err != nil {
		s.logger.Warn("UpdateWeekSchedule: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	if err := s.professionalRepo.UpsertWeekSchedule(ctx, schedule); err != nil {
		s.logger.Error("UpdateWeekSchedule: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: UpdateWeekSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekSchedule: updated schedule for professional=%d", req.ProfessionalID)
	return models.FromDomainWeekSchedule(schedule), nil
}

// CreateBlockedTime создает блокировку времени.
// Пересечения с существующими блокировками и записями допустимы:
// калькулятор доступности трактует их как объединение занятых интервалов.
func (s *Service) CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: professional=%d, date=%s, %s-%s",
		req.ProfessionalID, req.Date, req.StartTime, req.EndTime)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateBlockedTime: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	start := types.TimeString(req.StartTime)
	end := types.TimeString(req.EndTime)
	if err := start.Validate(); err != nil {
		s.logger.Warn("CreateBlockedTime: invalid startTime=%s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid startTime format, expected HH:MM", ErrInvalidInput)
	}
	if err := end.Validate(); err != nil {
		s.logger.Warn("CreateBlockedTime: invalid endTime=%s: %v", req.EndTime, err)
		return nil, fmt.Errorf("%w: invalid endTime format, expected HH:MM", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		s.logger.Warn("CreateBlockedTime: reason is too long for professional=%d", req.ProfessionalID)
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	block := &domain.BlockedTime{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Reason:         req.Reason,
	}

	if !block.IsValidInterval() {
		s.logger.Warn("CreateBlockedTime: invalid interval %s-%s for professional=%d",
			start, end, req.ProfessionalID)
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	created, err := s.blockedTimeRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: created blocked time id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainBlockedTime(created), nil
}

// GetBlockedTimes получает блокировки профессионала на дату
func (s *Service) GetBlockedTimes(ctx context.Context, professionalID int64, date time.Time) (*models.BlockedTimeListResponse, error) {
	s.logger.Info("GetBlockedTimes: professional=%d, date=%s", professionalID, date.Format(domain.DateFormat))

	blocks, err := s.blockedTimeRepo.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		s.logger.Error("GetBlockedTimes: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetBlockedTimes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTimeList(blocks), nil
}

// DeleteBlockedTime удаляет блокировку времени
func (s *Service) DeleteBlockedTime(ctx context.Context, professionalID, id int64) error {
	s.logger.Info("DeleteBlockedTime: deleting blocked time id=%d for professional=%d", id, professionalID)

	if err := s.blockedTimeRepo.Delete(ctx, professionalID, id); err != nil {
		if errors.Is(err, blockedTimeRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("DeleteBlockedTime: blocked time id=%d not found for professional=%d", id, professionalID)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for blocked time id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedTime: deleted blocked time id=%d for professional=%d", id, professionalID)
	return nil
}

// validateWeekSchedule проверяет корректность рабочих окон.
// У выключенных дней времена не проверяются.
func validateWeekSchedule(w *domain.WeekSchedule) error {
	days := map[string]domain.DaySchedule{
		"monday":    w.Monday,
		"tuesday":   w.Tuesday,
		"wednesday": w.Wednesday,
		"thursday":  w.Thursday,
		"friday":    w.Friday,
		"saturday":  w.Saturday,
		"sunday":    w.Sunday,
	}

	for name, day := range days {
		if !day.Enabled {
			continue
		}
		if err := day.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: %s startTime: %v", ErrInvalidInput, name, err)
		}
		if err := day.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: %s endTime: %v", ErrInvalidInput, name, err)
		}
		if !day.StartTime.IsBefore(day.EndTime) {
			return fmt.Errorf("%w: %s startTime must be before endTime", ErrInvalidTimeRange, name)
		}
	}

	return nil
}
