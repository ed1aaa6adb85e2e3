package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	appointmentRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// fakeAppointmentRepo хранит записи в памяти и имитирует поведение storage:
// Create присваивает ID и добавляет запись в выборку последующих чтений
type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *apt
	created.ID = f.nextID
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, apt := range f.appointments {
		if apt.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if !filter.IncludeInactive && !apt.IsActive() {
			continue
		}
		result = append(result, apt)
	}
	return result, nil
}

type fakeBlockedTimeRepo struct {
	blocks []*domain.BlockedTime
}

func (f *fakeBlockedTimeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blocks, nil
}

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

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var (
	testProf = &domain.Professional{ID: 10, Slug: "maria-manicure", Name: "Maria"}
	testSvc  = &domain.Service{ID: 5, ProfessionalID: 10, Name: "Manicure", Price: 50, DurationMinutes: 30}

	// Среда, рабочий день по умолчанию
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
)

type testEnv struct {
	uc      *UseCase
	aptRepo *fakeAppointmentRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	aptRepo := &fakeAppointmentRepo{}
	profRepo := &fakeProfessionalRepo{
		prof:        testProf,
		scheduleErr: professionalRepo.ErrScheduleNotFound, // расписание по умолчанию, 08:00-18:00
	}
	uc := NewUseCase(aptRepo, &fakeBlockedTimeRepo{}, profRepo, &fakeServiceRepo{svc: testSvc}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return &testEnv{uc: uc, aptRepo: aptRepo}
}

func validRequest() *Request {
	return &Request{
		Slug:        "maria-manicure",
		ServiceID:   5,
		Date:        testDate,
		StartTime:   "10:00",
		ClientName:  "Ana Souza",
		ClientPhone: "+5511999990000",
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.ProfessionalID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)

	// Данные услуги зафиксированы на момент создания
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, 50.0, resp.ServicePrice)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_SequentialDoubleBooking(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй запрос на тот же слот видит первую запись и отклоняется
	_, err = env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	assert.Len(t, env.aptRepo.appointments, 1)
}

func TestExecute_OverlapWithExistingAppointment(t *testing.T) {
	env := newTestEnv(t)
	env.aptRepo.appointments = []*domain.Appointment{
		{ID: 100, ProfessionalID: 10, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}

	req := validRequest()
	req.StartTime = "10:30"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	env.aptRepo.appointments = []*domain.Appointment{
		{ID: 100, ProfessionalID: 10, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusCancelled},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_TouchingBoundaryAllowed(t *testing.T) {
	env := newTestEnv(t)
	env.aptRepo.appointments = []*domain.Appointment{
		{ID: 100, ProfessionalID: 10, StartTime: "09:30", EndTime: "10:00", Status: domain.StatusConfirmed},
	}

	// Запись начинается ровно в момент окончания предыдущей
	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_BlockedTimeConflict(t *testing.T) {
	aptRepo := &fakeAppointmentRepo{}
	profRepo := &fakeProfessionalRepo{prof: testProf, scheduleErr: professionalRepo.ErrScheduleNotFound}
	blockRepo := &fakeBlockedTimeRepo{blocks: []*domain.BlockedTime{
		{ID: 1, ProfessionalID: 10, StartTime: "09:00", EndTime: "12:00"},
	}}
	uc := NewUseCase(aptRepo, blockRepo, profRepo, &fakeServiceRepo{svc: testSvc}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_StorageConflictMapsToSlotConflict(t *testing.T) {
	// Exclusion constraint сработал на вставке - наружу уходит конфликт слота
	env := newTestEnv(t)
	env.aptRepo.createErr = appointmentRepo.ErrSlotConflict

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ProfessionalClosed(t *testing.T) {
	env := newTestEnv(t)

	// Воскресенье по умолчанию выходной
	req := validRequest()
	req.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalClosed)
}

func TestExecute_StartTimeOutsideGrid(t *testing.T) {
	env := newTestEnv(t)

	req := validRequest()
	req.StartTime = "10:15"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StartTimeOutsideWorkingWindow(t *testing.T) {
	env := newTestEnv(t)

	req := validRequest()
	req.StartTime = "07:00"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceDoesNotFitIntoWindow(t *testing.T) {
	env := newTestEnv(t)

	// Услуга 30 минут, начало 17:45 не попадает в сетку, а 17:30+30=18:00 - попадает
	req := validRequest()
	req.StartTime = "17:30"
	_, err := env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// Последний слот сетки, услуга вылезает за конец окна
	longSvc := &domain.Service{ID: 5, ProfessionalID: 10, Name: "Spa", Price: 120, DurationMinutes: 60}
	aptRepo := &fakeAppointmentRepo{}
	profRepo := &fakeProfessionalRepo{prof: testProf, scheduleErr: professionalRepo.ErrScheduleNotFound}
	uc := NewUseCase(aptRepo, &fakeBlockedTimeRepo{}, profRepo, &fakeServiceRepo{svc: longSvc}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	req = validRequest()
	req.StartTime = "17:30"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_PastDate(t *testing.T) {
	env := newTestEnv(t)

	req := validRequest()
	req.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayElapsedStartTime(t *testing.T) {
	env := newTestEnv(t)
	env.uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)}

	req := validRequest() // начало 10:00, сейчас 11:00 того же дня
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Будущее время того же дня допустимо
	req.StartTime = "11:30"
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	aptRepo := &fakeAppointmentRepo{}
	profRepo := &fakeProfessionalRepo{profErr: professionalRepo.ErrProfessionalNotFound}
	uc := NewUseCase(aptRepo, &fakeBlockedTimeRepo{}, profRepo, &fakeServiceRepo{svc: testSvc}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceBelongsToAnotherProfessional(t *testing.T) {
	foreign := &domain.Service{ID: 5, ProfessionalID: 777, Name: "Manicure", DurationMinutes: 30}
	aptRepo := &fakeAppointmentRepo{}
	profRepo := &fakeProfessionalRepo{prof: testProf, scheduleErr: professionalRepo.ErrScheduleNotFound}
	uc := NewUseCase(aptRepo, &fakeBlockedTimeRepo{}, profRepo, &fakeServiceRepo{svc: foreign}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	req := validRequest()
	req.ClientName = ""
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.ClientPhone = ""
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "25:00"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
