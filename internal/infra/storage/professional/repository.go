package professional

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/meuagendamento/scheduling-service/internal/domain"
	"github.com/meuagendamento/scheduling-service/pkg/dbmetrics"
	"github.com/meuagendamento/scheduling-service/pkg/psqlbuilder"
	"github.com/meuagendamento/scheduling-service/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var professionalColumns = []string{
	"id",
	"slug",
	"name",
	"business_name",
	"email",
	"phone",
	"logo_url",
	"address",
	"created_at",
}

// Repository репозиторий для работы с профессионалами и их расписанием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профессионала по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetBySlug получает профессионала по slug публичной страницы записи
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Professional, error) {
	return r.getByColumn(ctx, "slug", slug)
}

func (r *Repository) getByColumn(ctx context.Context, column string, value interface{}) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{column: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - build select query: %v", ErrBuildQuery, err)
	}

	var prof domain.Professional
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.Slug,
		&prof.Name,
		&prof.BusinessName,
		&prof.Email,
		&prof.Phone,
		&prof.LogoURL,
		&prof.Address,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - scan professional: %v", ErrScanRow, err)
	}

	prof.CreatedAt = createdAt.Time

	return &prof, nil
}

// GetWeekSchedule получает недельное расписание профессионала.
// Если ни одной строки не сохранено, возвращает ErrScheduleNotFound -
// вызывающий слой подставляет расписание по умолчанию.
func (r *Repository) GetWeekSchedule(ctx context.Context, professionalID int64) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"start_time",
		"end_time",
		"updated_at",
	).
		From("week_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := &domain.WeekSchedule{ProfessionalID: professionalID}
	found := false

	for rows.Next() {
		var weekday int
		var enabled bool
		var startTime, endTime *types.TimeString
		var updatedAt sql.NullTime

		if err := rows.Scan(&weekday, &enabled, &startTime, &endTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetWeekSchedule - scan row: %v", ErrScanRow, err)
		}

		day := domain.DaySchedule{Enabled: enabled}
		if startTime != nil {
			day.StartTime = *startTime
		}
		if endTime != nil {
			day.EndTime = *endTime
		}

		schedule.SetForWeekday(time.Weekday(weekday), day)
		if updatedAt.Time.After(schedule.UpdatedAt) {
			schedule.UpdatedAt = updatedAt.Time
		}
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// UpsertWeekSchedule сохраняет недельное расписание профессионала (все 7 дней)
func (r *Repository) UpsertWeekSchedule(ctx context.Context, schedule *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("week_schedules").
		Columns("professional_id", "weekday", "enabled", "start_time", "end_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := schedule.ForWeekday(weekday)

		var startTime, endTime interface{}
		if day.Enabled {
			startTime = day.StartTime
			endTime = day.EndTime
		}

		insertBuilder = insertBuilder.Values(
			schedule.ProfessionalID,
			int(weekday),
			day.Enabled,
			startTime,
			endTime,
		)
	}

	query, args, err := insertBuilder.
		Suffix(`ON CONFLICT (professional_id, weekday) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertWeekSchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertWeekSchedule - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
