package invite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/dbmetrics"
	"github.com/meuagendamento/scheduling-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var inviteColumns = []string{
	"id",
	"code",
	"professional_id",
	"client_name",
	"client_email",
	"expires_at",
	"used_at",
	"created_at",
}

// Repository репозиторий для работы с кодами-приглашениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приглашений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает приглашение
func (r *Repository) Create(ctx context.Context, inv *domain.ClientInvite) (*domain.ClientInvite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("client_invites").
		Columns(
			"code",
			"professional_id",
			"client_name",
			"client_email",
			"expires_at",
		).
		Values(
			inv.Code,
			inv.ProfessionalID,
			inv.ClientName,
			inv.ClientEmail,
			inv.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time

	return inv, nil
}

// GetByCode получает приглашение по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.ClientInvite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(inviteColumns...).
		From("client_invites").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := r.scanInvite(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInviteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan invite: %v", ErrScanRow, err)
	}

	return inv, nil
}

// GetAll получает все приглашения, сначала новые
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ClientInvite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(inviteColumns...).
		From("client_invites").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invites := make([]*domain.ClientInvite, 0)

	for rows.Next() {
		inv, err := r.scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		invites = append(invites, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return invites, nil
}

// MarkUsed отмечает приглашение использованным.
// Условие used_at IS NULL не даёт использовать код дважды.
func (r *Repository) MarkUsed(ctx context.Context, code string, usedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("client_invites").
		Set("used_at", usedAt).
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"used_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInviteNotFound
	}

	return nil
}

// Delete удаляет приглашение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("client_invites").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInviteNotFound
	}

	return nil
}

// DeleteExpired удаляет просроченные неиспользованные приглашения.
// Возвращает количество удалённых строк. Вызывается фоновой cron-задачей.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("client_invites").
		Where(squirrel.Lt{"expires_at": now}).
		Where(squirrel.Eq{"used_at": nil}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanInvite(row rowScanner) (*domain.ClientInvite, error) {
	var inv domain.ClientInvite
	var createdAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.Code,
		&inv.ProfessionalID,
		&inv.ClientName,
		&inv.ClientEmail,
		&inv.ExpiresAt,
		&inv.UsedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	inv.CreatedAt = createdAt.Time

	return &inv, nil
}
