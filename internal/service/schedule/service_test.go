package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	blockedTimeRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/blockedtime"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/internal/service/schedule/models"
)

type fakeProfessionalRepo struct {
	schedule    *domain.WeekSchedule
	scheduleErr error
	upserted    *domain.WeekSchedule
}

func (f *fakeProfessionalRepo) GetWeekSchedule(_ context.Context, _ int64) (*domain.WeekSchedule, error) {
	return f.schedule, f.scheduleErr
}

func (f *fakeProfessionalRepo) UpsertWeekSchedule(_ context.Context, schedule *domain.WeekSchedule) error {
	f.upserted = schedule
	return nil
}

type fakeBlockedTimeRepo struct {
	blocks    []*domain.BlockedTime
	created   *domain.BlockedTime
	deleteErr error
}

func (f *fakeBlockedTimeRepo) Create(_ context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *block
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeBlockedTimeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedTime, error) {
	return f.blocks, nil
}

func (f *fakeBlockedTimeRepo) Delete(_ context.Context, _, _ int64) error {
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func workWeekRequest() *models.UpdateWeekScheduleRequest {
	weekday := models.DayScheduleInput{Enabled: true, StartTime: "09:00", EndTime: "18:00"}
	return &models.UpdateWeekScheduleRequest{
		ProfessionalID: 10,
		Monday:         weekday,
		Tuesday:        weekday,
		Wednesday:      weekday,
		Thursday:       weekday,
		Friday:         weekday,
		Saturday:       models.DayScheduleInput{Enabled: false},
		Sunday:         models.DayScheduleInput{Enabled: false},
	}
}

func TestGetWeekSchedule_FallsBackToDefault(t *testing.T) {
	profRepo := &fakeProfessionalRepo{scheduleErr: professionalRepo.ErrScheduleNotFound}
	svc := NewService(profRepo, &fakeBlockedTimeRepo{}, nopLogger{})

	resp, err := svc.GetWeekSchedule(context.Background(), 10)
	require.NoError(t, err)

	// По умолчанию понедельник-суббота рабочие, воскресенье выходной
	assert.True(t, resp.Monday.Enabled)
	assert.Equal(t, "08:00", resp.Monday.StartTime)
	assert.Equal(t, "18:00", resp.Monday.EndTime)
	assert.True(t, resp.Saturday.Enabled)
	assert.False(t, resp.Sunday.Enabled)
}

func TestUpdateWeekSchedule(t *testing.T) {
	profRepo := &fakeProfessionalRepo{}
	svc := NewService(profRepo, &fakeBlockedTimeRepo{}, nopLogger{})

	resp, err := svc.UpdateWeekSchedule(context.Background(), workWeekRequest())
	require.NoError(t, err)

	require.NotNil(t, profRepo.upserted)
	assert.Equal(t, int64(10), profRepo.upserted.ProfessionalID)
	assert.Equal(t, "09:00", resp.Monday.StartTime)
	assert.False(t, resp.Sunday.Enabled)
}

func TestUpdateWeekSchedule_InvalidRange(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, &fakeBlockedTimeRepo{}, nopLogger{})

	req := workWeekRequest()
	req.Wednesday = models.DayScheduleInput{Enabled: true, StartTime: "18:00", EndTime: "09:00"}

	_, err := svc.UpdateWeekSchedule(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateWeekSchedule_DisabledDayTimesIgnored(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, &fakeBlockedTimeRepo{}, nopLogger{})

	// У выключенного дня времена не проверяются
	req := workWeekRequest()
	req.Sunday = models.DayScheduleInput{Enabled: false, StartTime: "bad", EndTime: ""}

	_, err := svc.UpdateWeekSchedule(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateWeekSchedule_InvalidTimeFormat(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, &fakeBlockedTimeRepo{}, nopLogger{})

	req := workWeekRequest()
	req.Friday = models.DayScheduleInput{Enabled: true, StartTime: "9:00", EndTime: "18:00"}

	_, err := svc.UpdateWeekSchedule(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBlockedTime(t *testing.T) {
	blockRepo := &fakeBlockedTimeRepo{}
	svc := NewService(&fakeProfessionalRepo{}, blockRepo, nopLogger{})

	reason := "Almoço"
	resp, err := svc.CreateBlockedTime(context.Background(), &models.CreateBlockedTimeRequest{
		ProfessionalID: 10,
		Date:           "2025-10-15",
		StartTime:      "12:00",
		EndTime:        "13:00",
		Reason:         &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "12:00", resp.StartTime)
	assert.Equal(t, "13:00", resp.EndTime)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Almoço", *resp.Reason)
}

func TestCreateBlockedTime_Validation(t *testing.T) {
	svc := NewService(&fakeProfessionalRepo{}, &fakeBlockedTimeRepo{}, nopLogger{})

	base := models.CreateBlockedTimeRequest{
		ProfessionalID: 10,
		Date:           "2025-10-15",
		StartTime:      "12:00",
		EndTime:        "13:00",
	}

	req := base
	req.Date = "15/10/2025"
	_, err := svc.CreateBlockedTime(context.Background(), &req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = base
	req.StartTime = "12:5"
	_, err = svc.CreateBlockedTime(context.Background(), &req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// start >= end
	req = base
	req.StartTime = "13:00"
	req.EndTime = "12:00"
	_, err = svc.CreateBlockedTime(context.Background(), &req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = base
	longReason := strings.Repeat("x", domain.MaxBlockReasonLength+1)
	req.Reason = &longReason
	_, err = svc.CreateBlockedTime(context.Background(), &req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlockedTime_NotFound(t *testing.T) {
	blockRepo := &fakeBlockedTimeRepo{deleteErr: blockedTimeRepo.ErrBlockedTimeNotFound}
	svc := NewService(&fakeProfessionalRepo{}, blockRepo, nopLogger{})

	err := svc.DeleteBlockedTime(context.Background(), 10, 404)
	assert.ErrorIs(t, err, ErrBlockedTimeNotFound)
}
