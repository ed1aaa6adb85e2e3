package invites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	inviteRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/invite"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	"github.com/meuagendamento/scheduling-service/internal/service/invites/models"
)

type fakeInviteRepo struct {
	byCode      map[string]*domain.ClientInvite
	all         []*domain.ClientInvite
	created     *domain.ClientInvite
	markUsedErr error
	markedCode  string
	deletedID   int64
	expiredGone int64
}

func (f *fakeInviteRepo) Create(_ context.Context, inv *domain.ClientInvite) (*domain.ClientInvite, error) {
	created := *inv
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeInviteRepo) GetByCode(_ context.Context, code string) (*domain.ClientInvite, error) {
	inv, ok := f.byCode[code]
	if !ok {
		return nil, inviteRepo.ErrInviteNotFound
	}
	return inv, nil
}

func (f *fakeInviteRepo) GetAll(_ context.Context) ([]*domain.ClientInvite, error) {
	return f.all, nil
}

func (f *fakeInviteRepo) MarkUsed(_ context.Context, code string, _ time.Time) error {
	if f.markUsedErr != nil {
		return f.markUsedErr
	}
	f.markedCode = code
	return nil
}

func (f *fakeInviteRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeInviteRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return f.expiredGone, nil
}

type fakeProfessionalRepo struct {
	prof *domain.Professional
	err  error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.prof, f.err
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
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	testProf = &domain.Professional{
		ID:           10,
		Slug:         "maria-manicure",
		Name:         "Maria",
		BusinessName: "Studio Maria",
	}
)

func newTestService(invRepo *fakeInviteRepo, profRepo *fakeProfessionalRepo, ttlDays int) *Service {
	svc := NewService(invRepo, profRepo, ttlDays, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestCreate(t *testing.T) {
	invRepo := &fakeInviteRepo{}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	resp, err := svc.Create(context.Background(), &models.CreateInviteRequest{ProfessionalID: 10})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Code)
	assert.Equal(t, "active", resp.Status)
	// Срок жизни отсчитывается от момента выпуска
	assert.Equal(t, testNow.Add(7*24*time.Hour), resp.ExpiresAt)
}

func TestCreate_DefaultTTL(t *testing.T) {
	invRepo := &fakeInviteRepo{}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 0)

	resp, err := svc.Create(context.Background(), &models.CreateInviteRequest{ProfessionalID: 10})
	require.NoError(t, err)

	expected := testNow.Add(time.Duration(domain.DefaultInviteTTLDays) * 24 * time.Hour)
	assert.Equal(t, expected, resp.ExpiresAt)
}

func TestCreate_ProfessionalNotFound(t *testing.T) {
	svc := newTestService(&fakeInviteRepo{}, &fakeProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound}, 7)

	_, err := svc.Create(context.Background(), &models.CreateInviteRequest{ProfessionalID: 99})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestList_DerivedStatuses(t *testing.T) {
	used := testNow.Add(-time.Hour)
	invRepo := &fakeInviteRepo{all: []*domain.ClientInvite{
		{ID: 1, Code: "a", ExpiresAt: testNow.Add(24 * time.Hour)},
		{ID: 2, Code: "b", ExpiresAt: testNow.Add(24 * time.Hour), UsedAt: &used},
		{ID: 3, Code: "c", ExpiresAt: testNow.Add(-time.Minute)},
	}}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Invites, 3)
	assert.Equal(t, "active", resp.Invites[0].Status)
	assert.Equal(t, "used", resp.Invites[1].Status)
	assert.Equal(t, "expired", resp.Invites[2].Status)
}

func TestResolve(t *testing.T) {
	invRepo := &fakeInviteRepo{byCode: map[string]*domain.ClientInvite{
		"code-1": {ID: 1, Code: "code-1", ProfessionalID: 10, ExpiresAt: testNow.Add(24 * time.Hour)},
	}}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	resp, err := svc.Resolve(context.Background(), "code-1")
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ProfessionalID)
	assert.Equal(t, "maria-manicure", resp.ProfessionalSlug)
	assert.Equal(t, "Studio Maria", resp.BusinessName)

	// Код помечен использованным
	assert.Equal(t, "code-1", invRepo.markedCode)
}

func TestResolve_NotFound(t *testing.T) {
	svc := newTestService(&fakeInviteRepo{byCode: map[string]*domain.ClientInvite{}}, &fakeProfessionalRepo{prof: testProf}, 7)

	_, err := svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestResolve_Expired(t *testing.T) {
	invRepo := &fakeInviteRepo{byCode: map[string]*domain.ClientInvite{
		"old": {ID: 1, Code: "old", ProfessionalID: 10, ExpiresAt: testNow.Add(-time.Minute)},
	}}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	_, err := svc.Resolve(context.Background(), "old")
	assert.ErrorIs(t, err, ErrInviteNotRedeemable)
	assert.Empty(t, invRepo.markedCode)
}

func TestResolve_AlreadyUsed(t *testing.T) {
	used := testNow.Add(-time.Hour)
	invRepo := &fakeInviteRepo{byCode: map[string]*domain.ClientInvite{
		"used": {ID: 1, Code: "used", ProfessionalID: 10, ExpiresAt: testNow.Add(24 * time.Hour), UsedAt: &used},
	}}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	_, err := svc.Resolve(context.Background(), "used")
	assert.ErrorIs(t, err, ErrInviteNotRedeemable)
}

func TestResolve_ConcurrentUse(t *testing.T) {
	// Конкурентный запрос использовал код между чтением и MarkUsed
	invRepo := &fakeInviteRepo{
		byCode: map[string]*domain.ClientInvite{
			"race": {ID: 1, Code: "race", ProfessionalID: 10, ExpiresAt: testNow.Add(24 * time.Hour)},
		},
		markUsedErr: inviteRepo.ErrInviteNotFound,
	}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	_, err := svc.Resolve(context.Background(), "race")
	assert.ErrorIs(t, err, ErrInviteNotRedeemable)
}

func TestCleanupExpired(t *testing.T) {
	invRepo := &fakeInviteRepo{expiredGone: 3}
	svc := newTestService(invRepo, &fakeProfessionalRepo{prof: testProf}, 7)

	deleted, err := svc.CleanupExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
