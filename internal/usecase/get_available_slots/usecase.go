package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	blockedTimeRepo  BlockedTimeRepository
	appointmentRepo  AppointmentRepository
	granularity      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	blockedTimeRepo BlockedTimeRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		blockedTimeRepo:  blockedTimeRepo,
		appointmentRepo:  appointmentRepo,
		granularity:      domain.DefaultSlotGranularityMinutes,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Результат не кэшируется: каждый запрос читает актуальное состояние хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: slug=%s, service=%d, date=%s",
		req.Slug, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профессионала по slug
	prof, err := uc.professionalRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional slug=%s not found", req.Slug)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем принадлежность профессионалу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if svc.ProfessionalID != prof.ID {
		uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to professional id=%d",
			req.ServiceID, prof.ID)
		return nil, ErrServiceNotFound
	}

	now := uc.timeProvider.Now()

	// 4. Дата в прошлом - пустой список слотов без ошибки
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, prof.ID, svc.DurationMinutes), nil
	}

	// 5. Получаем рабочее окно на день недели.
	// Если расписание не сохранено, используем расписание по умолчанию.
	schedule, err := uc.professionalRepo.GetWeekSchedule(ctx, prof.ID)
	if err != nil {
		if !errors.Is(err, professionalRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get week schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get week schedule: %v", ErrInternal, err)
		}
		schedule = domain.DefaultWeekSchedule(prof.ID)
		uc.logger.Info("GetAvailableSlots: using default week schedule for professional id=%d", prof.ID)
	}

	day := schedule.ForWeekday(req.Date.Weekday())
	if !day.Enabled {
		uc.logger.Info("GetAvailableSlots: professional id=%d is closed on %s",
			prof.ID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, prof.ID, svc.DurationMinutes), nil
	}

	// 6. Читаем блокировки и активные записи на дату
	blocks, err := uc.blockedTimeRepo.GetByProfessionalAndDate(ctx, prof.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID:  prof.ID,
		Date:            &req.Date,
		IncludeInactive: false, // Отменённые записи не занимают время
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступные времена начала
	occupied, err := collectOccupiedIntervals(blocks, appointments)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid intervals in storage: %v", err)
		return nil, err
	}

	slots, err := computeAvailableSlots(day, svc.DurationMinutes, uc.granularity, occupied)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: slot computation failed: %v", err)
		return nil, err
	}

	// 8. Для сегодняшней даты убираем уже прошедшие времена
	slots = filterPastStartTimes(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%d, service=%d, date=%s",
		len(slots), prof.ID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  prof.ID,
		ServiceID:       req.ServiceID,
		DurationMinutes: svc.DurationMinutes,
		StartTimes:      slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, professionalID int64, duration int) *Response {
	return &Response{
		Date:            req.Date,
		ProfessionalID:  professionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		StartTimes:      []types.TimeString{},
	}
}
