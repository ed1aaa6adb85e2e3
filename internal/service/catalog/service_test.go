package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
	"github.com/meuagendamento/scheduling-service/internal/service/catalog/models"
	"github.com/meuagendamento/scheduling-service/pkg/ptr"
)

type fakeServiceRepo struct {
	byID    map[int64]*domain.Service
	list    []*domain.Service
	created *domain.Service
	updated *domain.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	created := *svc
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeServiceRepo) GetByProfessional(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.list, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.updated = svc
	return svc, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, _, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		ProfessionalID:  10,
		Name:            "Manicure",
		Price:           50,
		DurationMinutes: 30,
		Color:           "#FF8A65",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Manicure", resp.Name)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{name: "empty name", req: models.CreateServiceRequest{ProfessionalID: 10, Price: 50, DurationMinutes: 30}},
		{name: "negative price", req: models.CreateServiceRequest{ProfessionalID: 10, Name: "x", Price: -1, DurationMinutes: 30}},
		{name: "zero duration", req: models.CreateServiceRequest{ProfessionalID: 10, Name: "x", Price: 50}},
		{name: "duration too long", req: models.CreateServiceRequest{ProfessionalID: 10, Name: "x", Price: 50, DurationMinutes: domain.MaxServiceDurationMinutes + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		1: {ID: 1, ProfessionalID: 10, Name: "Manicure", Price: 50, DurationMinutes: 30},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		ProfessionalID: 10,
		Price:          ptr.Ptr(65.0),
	})
	require.NoError(t, err)

	// Изменилась только цена
	assert.Equal(t, 65.0, resp.Price)
	assert.Equal(t, "Manicure", resp.Name)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestUpdate_AccessDenied(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		1: {ID: 1, ProfessionalID: 10, Name: "Manicure", Price: 50, DurationMinutes: 30},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		ProfessionalID: 777,
		Price:          ptr.Ptr(1.0),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{byID: map[int64]*domain.Service{}}, nopLogger{})

	_, err := svc.Update(context.Background(), 404, &models.UpdateServiceRequest{ProfessionalID: 10})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_InvalidResult(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		1: {ID: 1, ProfessionalID: 10, Name: "Manicure", Price: 50, DurationMinutes: 30},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		ProfessionalID:  10,
		DurationMinutes: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		1: {ID: 1, ProfessionalID: 10, Name: "Manicure", Price: 50, DurationMinutes: 30},
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 10, 1), ErrServiceNotFound)
}
