package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	appointmentRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo  AppointmentRepository
	blockedTimeRepo  BlockedTimeRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	granularity      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedTimeRepo BlockedTimeRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		blockedTimeRepo:  blockedTimeRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		granularity:      domain.DefaultSlotGranularityMinutes,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка занятости и вставка выполняются в одной serializable транзакции
// с блокировкой строк записей на дату (FOR UPDATE). Exclusion constraint в
// Postgres служит последней линией защиты от двойного бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: slug=%s, service=%d, date=%s, start=%s",
		req.Slug, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профессионала по slug
	prof, err := uc.professionalRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional slug=%s not found", req.Slug)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем принадлежность профессионалу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if svc.ProfessionalID != prof.ID {
		uc.logger.Warn("CreateAppointment: service id=%d does not belong to professional id=%d",
			req.ServiceID, prof.ID)
		return nil, ErrServiceNotFound
	}

	now := uc.timeProvider.Now()

	// 4. Дата в прошлом или время начала уже прошло сегодня
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	if isSameDay(req.Date, now) {
		nowTime := now.Format(domain.TimeFormat)
		if string(req.StartTime) <= nowTime {
			uc.logger.Warn("CreateAppointment: start time %s already passed (now %s)", req.StartTime, nowTime)
			return nil, fmt.Errorf("%w: start time already passed", ErrInvalidDate)
		}
	}

	// 5. Вычисляем время окончания по длительности услуги
	endTime, err := req.StartTime.AddMinutes(svc.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: end time out of range: %v", err)
		return nil, fmt.Errorf("%w: service does not fit into the day", ErrInvalidTimeSlot)
	}

	var created *domain.Appointment

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6. Рабочее окно на день недели
		schedule, err := uc.professionalRepo.GetWeekSchedule(txCtx, prof.ID)
		if err != nil {
			if !errors.Is(err, professionalRepo.ErrScheduleNotFound) {
				return fmt.Errorf("%w: failed to get week schedule: %v", ErrInternal, err)
			}
			schedule = domain.DefaultWeekSchedule(prof.ID)
		}

		day := schedule.ForWeekday(req.Date.Weekday())
		if !day.Enabled {
			return ErrProfessionalClosed
		}

		if err := validateSlotInWindow(day, req.StartTime, endTime, uc.granularity); err != nil {
			return err
		}

		// 7. Перечитываем занятость внутри транзакции.
		// Репозиторий записей пристегивает FOR UPDATE к запросу с датой.
		blocks, err := uc.blockedTimeRepo.GetByProfessionalAndDate(txCtx, prof.ID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, domain.AppointmentsFilter{
			ProfessionalID:  prof.ID,
			Date:            &req.Date,
			IncludeInactive: false,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if hasOverlap(req.StartTime, endTime, blocks, appointments) {
			return ErrSlotConflict
		}

		// 8. Создаем запись со статусом pending.
		// Название, цена и длительность услуги фиксируются на момент создания:
		// последующее редактирование услуги не меняет существующие записи.
		apt := &domain.Appointment{
			ProfessionalID:  prof.ID,
			ServiceID:       svc.ID,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ClientEmail:     req.ClientEmail,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Status:          domain.StatusPending,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			DurationMinutes: svc.DurationMinutes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		// Нарушение exclusion constraint или сбой сериализации - слот заняла
		// конкурентная транзакция
		if errors.Is(txErr, appointmentRepo.ErrSlotConflict) || appointmentRepo.IsConflictError(txErr) {
			uc.logger.Warn("CreateAppointment: concurrent booking detected for professional=%d, date=%s, start=%s",
				prof.ID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotConflict
		}
		if errors.Is(txErr, ErrSlotConflict) ||
			errors.Is(txErr, ErrProfessionalClosed) ||
			errors.Is(txErr, ErrInvalidTimeSlot) ||
			errors.Is(txErr, ErrInvalidInput) ||
			errors.Is(txErr, ErrInternal) {
			uc.logger.Warn("CreateAppointment: rejected: %v", txErr)
			return nil, txErr
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", txErr)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for professional=%d, date=%s, %s-%s",
		created.ID, prof.ID, req.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return buildResponse(created), nil
}

func buildResponse(apt *domain.Appointment) *Response {
	return &Response{
		ID:              apt.ID,
		ProfessionalID:  apt.ProfessionalID,
		ServiceID:       apt.ServiceID,
		ClientName:      apt.ClientName,
		ClientPhone:     apt.ClientPhone,
		ClientEmail:     apt.ClientEmail,
		Date:            apt.Date,
		StartTime:       apt.StartTime,
		EndTime:         apt.EndTime,
		Status:          string(apt.Status),
		ServiceName:     apt.ServiceName,
		ServicePrice:    apt.ServicePrice,
		DurationMinutes: apt.DurationMinutes,
		CreatedAt:       apt.CreatedAt,
		UpdatedAt:       apt.UpdatedAt,
	}
}
