package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/psqlbuilder"
)

const (
	table = "teacher_availabilities"

	codeForeignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"teacher_id",
	"subject",
	"available_date",
	"start_time",
	"end_time",
	"max_students_per_slot",
	"created_at",
}

// Repository окна преподавателей
type Repository struct {
	db    DBExecutor
	newID func() string
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, newID: uuid.NewString}
}

// Create сохраняет окно. Проверка пересечений остается на вызывающем
func (r *Repository) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	created := *a
	created.ID = r.newID()

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			created.ID,
			created.TeacherID,
			created.Subject,
			created.TargetDate.Format(domain.DateFormat),
			created.WindowStart,
			created.WindowEnd,
			created.CapacityPerSlot,
			created.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
			return nil, fmt.Errorf("%w: Create - teacher=%s", ErrUnknownTeacher, created.TeacherID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return &created, nil
}

// GetByTeacherAndDate окна преподавателя на дату в порядке публикации
func (r *Repository) GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) ([]*domain.Availability, error) {
	return r.list(ctx, "GetByTeacherAndDate", squirrel.Eq{
		"teacher_id":     teacherID,
		"available_date": date.Format(domain.DateFormat),
	})
}

// GetByDate все окна на дату в порядке публикации
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Availability, error) {
	return r.list(ctx, "GetByDate", squirrel.Eq{"available_date": date.Format(domain.DateFormat)})
}

// LockTeacherDay сериализует публикацию окон одного преподавателя на дату
func (r *Repository) LockTeacherDay(ctx context.Context, teacherID string, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := fmt.Sprintf("availability:%s:%s", teacherID, date.Format(domain.DateFormat))
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockTeacherDay - key=%s: %w", ErrExecQuery, key, err)
	}
	return nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var result []*domain.Availability
	for rows.Next() {
		var a domain.Availability
		if err := rows.Scan(
			&a.ID,
			&a.TeacherID,
			&a.Subject,
			&a.TargetDate,
			&a.WindowStart,
			&a.WindowEnd,
			&a.CapacityPerSlot,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan availability: %w", ErrScanRow, op, err)
		}
		result = append(result, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}
	return result, nil
}
