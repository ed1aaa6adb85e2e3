package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

type fakeProfessionalRepo struct {
	prof        *domain.Professional
	profErr     error
	schedule    *domain.WeekSchedule
	scheduleErr error
}

func (f *fakeProfessionalRepo) GetBySlug(_ context.Context, _ string) (*domain.Professional, error) {
	return f.prof, f.profErr
}

func (f *fakeProfessionalRepo) GetWeekSchedule(_ context.Context, _ int64) (*domain.WeekSchedule, error) {
	return f.schedule, f.scheduleErr
}

type fakeServiceRepo struct {
	svc *domain.Service
	err error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.svc, f.err
}

type fakeBlockedTimeRepo struct {
	blocks []*domain.BlockedTime
	err    error
}

func (f *fakeBlockedTimeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blocks, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	err          error
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule(professionalID int64, day time.Weekday, start, end string) *domain.WeekSchedule {
	schedule := &domain.WeekSchedule{ProfessionalID: professionalID}
	schedule.SetForWeekday(day, domain.DaySchedule{
		Enabled:   true,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	})
	return schedule
}

// newTestUseCase собирает use case на фейках с фиксированным временем
func newTestUseCase(
	profRepo *fakeProfessionalRepo,
	svcRepo *fakeServiceRepo,
	blockRepo *fakeBlockedTimeRepo,
	aptRepo *fakeAppointmentRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(profRepo, svcRepo, blockRepo, aptRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

var (
	testProf = &domain.Professional{ID: 10, Slug: "maria-manicure", Name: "Maria"}
	testSvc  = &domain.Service{ID: 5, ProfessionalID: 10, Name: "Manicure", DurationMinutes: 30}

	// Среда
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
)

func TestExecute_Success(t *testing.T) {
	profRepo := &fakeProfessionalRepo{
		prof:     testProf,
		schedule: testSchedule(10, time.Wednesday, "09:00", "12:00"),
	}
	aptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, &fakeBlockedTimeRepo{}, aptRepo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ProfessionalID)
	assert.Equal(t, int64(5), resp.ServiceID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, resp.StartTimes)

	// Отменённые записи не должны попадать в выборку
	assert.False(t, aptRepo.lastFilter.IncludeInactive)
	require.NotNil(t, aptRepo.lastFilter.Date)
	assert.Equal(t, testDate, *aptRepo.lastFilter.Date)
}

func TestExecute_OccupiedIntervalsRemoveSlots(t *testing.T) {
	profRepo := &fakeProfessionalRepo{
		prof:     testProf,
		schedule: testSchedule(10, time.Wednesday, "09:00", "12:00"),
	}
	blockRepo := &fakeBlockedTimeRepo{blocks: []*domain.BlockedTime{
		{ID: 1, StartTime: "09:00", EndTime: "10:00"},
	}}
	aptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, StartTime: "11:00", EndTime: "11:30", Status: domain.StatusConfirmed},
		{ID: 2, StartTime: "10:30", EndTime: "11:00", Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, blockRepo, aptRepo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)

	// Блокировка закрывает 09:00 и 09:30, подтверждённая запись закрывает 11:00,
	// отменённая запись на 10:30 времени не занимает
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:30"}, resp.StartTimes)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	profRepo := &fakeProfessionalRepo{profErr: professionalRepo.ErrProfessionalNotFound}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Slug: "unknown", ServiceID: 5, Date: testDate})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	profRepo := &fakeProfessionalRepo{prof: testProf}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceBelongsToAnotherProfessional(t *testing.T) {
	foreign := &domain.Service{ID: 5, ProfessionalID: 777, Name: "Manicure", DurationMinutes: 30}
	profRepo := &fakeProfessionalRepo{prof: testProf}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: foreign}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	profRepo := &fakeProfessionalRepo{prof: testProf}
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.StartTimes)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	// Расписание с рабочим окном только в четверг, запрос на среду
	profRepo := &fakeProfessionalRepo{
		prof:     testProf,
		schedule: testSchedule(10, time.Thursday, "09:00", "12:00"),
	}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.StartTimes)
}

func TestExecute_FallsBackToDefaultSchedule(t *testing.T) {
	profRepo := &fakeProfessionalRepo{
		prof:        testProf,
		scheduleErr: professionalRepo.ErrScheduleNotFound,
	}
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	// Среда по умолчанию рабочая, 08:00-18:00
	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.StartTimes, 20)
	assert.Equal(t, types.TimeString("08:00"), resp.StartTimes[0])

	// Воскресенье по умолчанию выходной
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	resp, err = uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.StartTimes)
}

func TestExecute_TodayFiltersElapsedTimes(t *testing.T) {
	profRepo := &fakeProfessionalRepo{
		prof:     testProf,
		schedule: testSchedule(10, time.Wednesday, "09:00", "12:00"),
	}
	now := time.Date(2025, 10, 15, 10, 5, 0, 0, time.UTC)
	uc := newTestUseCase(profRepo, &fakeServiceRepo{svc: testSvc}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:30", "11:00", "11:30"}, resp.StartTimes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeProfessionalRepo{}, &fakeServiceRepo{}, &fakeBlockedTimeRepo{}, &fakeAppointmentRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Slug: "", ServiceID: 5, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Slug: "maria-manicure", ServiceID: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
