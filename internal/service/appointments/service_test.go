package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	appointmentRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/appointment"
	"github.com/meuagendamento/scheduling-service/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byID         map[int64]*domain.Appointment
	listResult   []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	updatedID    int64
	updatedTo    domain.AppointmentStatus
	updateCalled bool
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.updateCalled = true
	f.updatedID = id
	f.updatedTo = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ProfessionalID:  10,
		ServiceID:       5,
		ClientName:      "Ana Souza",
		ClientPhone:     "+5511999990000",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "10:30",
		Status:          status,
		ServiceName:     "Manicure",
		ServicePrice:    50,
		DurationMinutes: 30,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	// Запись принадлежит профессионалу 10, запрашивает 777
	_, err := svc.GetByID(context.Background(), 1, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProfessionalAppointments_Filter(t *testing.T) {
	repo := &fakeAppointmentRepo{listResult: []*domain.Appointment{
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	status := "pending"
	resp, err := svc.GetProfessionalAppointments(context.Background(), &models.GetAppointmentsRequest{
		ProfessionalID: 10,
		Date:           &date,
		Status:         &status,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(10), repo.lastFilter.ProfessionalID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, date, *repo.lastFilter.Date)
}

func TestGetProfessionalAppointments_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	status := "done"
	_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetAppointmentsRequest{
		ProfessionalID: 10,
		Status:         &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.AppointmentStatus
		to       string
		wantErr  error
		expectDB bool
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed", expectDB: true},
		{name: "pending to cancelled", from: domain.StatusPending, to: "cancelled", expectDB: true},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled", expectDB: true},
		{name: "confirmed back to pending", from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidStatusTransition},
		{name: "cancelled is final", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidStatusTransition},
		{name: "same status", from: domain.StatusPending, to: "pending", wantErr: ErrInvalidStatusTransition},
		{name: "unknown status", from: domain.StatusPending, to: "done", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
				1: testAppointment(1, tt.from),
			}}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				ProfessionalID: 10,
				Status:         tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, repo.updateCalled)
				return
			}

			require.NoError(t, err)
			assert.True(t, repo.updateCalled)
			assert.Equal(t, domain.AppointmentStatus(tt.to), repo.updatedTo)
		})
	}
}

func TestUpdateStatus_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ProfessionalID: 777,
		Status:         "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updateCalled)
}

func TestExportCSV(t *testing.T) {
	repo := &fakeAppointmentRepo{listResult: []*domain.Appointment{
		testAppointment(1, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	data, err := svc.ExportCSV(context.Background(), &models.GetAppointmentsRequest{ProfessionalID: 10})
	require.NoError(t, err)

	expected := "Data,Hora,Cliente,Telefone,Status\n" +
		"15/10/2025,10:00,Ana Souza,+5511999990000,confirmed\n"
	assert.Equal(t, expected, string(data))
}

func TestExportCSV_Empty(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	data, err := svc.ExportCSV(context.Background(), &models.GetAppointmentsRequest{ProfessionalID: 10})
	require.NoError(t, err)

	// Только заголовок
	assert.Equal(t, "Data,Hora,Cliente,Telefone,Status\n", string(data))
}
