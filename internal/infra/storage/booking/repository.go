package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/psqlbuilder"
)

const (
	table = "class_bookings"

	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"student_id",
	"teacher_id",
	"subject",
	"booking_date",
	"start_time",
	"end_time",
	"booked_at",
	"fees_paid",
	"payment_timestamp",
}

// Repository репозиторий бронирований занятий
type Repository struct {
	db    DBExecutor
	newID IDGenerator
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		db:    db,
		newID: uuid.NewString,
	}
}

// Create сохраняет бронирование и присваивает ему идентификатор.
// Вторая запись студента на ту же дату отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	created := *booking
	created.ID = r.newID()

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			created.ID,
			created.StudentID,
			created.TeacherID,
			created.Subject,
			created.BookingDate.Format(domain.DateFormat),
			created.StartTime,
			created.EndTime,
			created.BookedAt,
			created.FeesPaid,
			created.PaymentTimestamp,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case codeUniqueViolation:
				return nil, fmt.Errorf("%w: Create - student=%s date=%s", ErrDuplicateStudentDay,
					created.StudentID, created.BookingDate.Format(domain.DateFormat))
			case codeForeignKeyViolation:
				return nil, fmt.Errorf("%w: Create - student=%s teacher=%s", ErrUnknownUser,
					created.StudentID, created.TeacherID)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter выборка по фильтру, упорядоченная по началу занятия
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_time ASC", "booked_at ASC")

	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.TeacherID != nil {
		builder = builder.Where(squirrel.Eq{"teacher_id": *filter.TeacherID})
	}
	if filter.BookingDate != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": filter.BookingDate.Format(domain.DateFormat)})
	}
	if filter.FromDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": filter.FromDate.Format(domain.DateFormat)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - iterate rows: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// LockSlot берет транзакционную advisory блокировку экземпляра слота.
// Вне транзакции бессмысленна: блокировка снимается сразу после запроса
func (r *Repository) LockSlot(ctx context.Context, slot domain.Slot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", slot.Key()); err != nil {
		return fmt.Errorf("%w: LockSlot - key=%s: %w", ErrExecQuery, slot.Key(), err)
	}
	return nil
}

// CountBySlot число бронирований экземпляра слота (teacher, date, start, end)
func (r *Repository) CountBySlot(ctx context.Context, slot domain.Slot) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"teacher_id":   slot.TeacherID,
			"booking_date": slot.Date.Format(domain.DateFormat),
			"start_time":   slot.Start,
			"end_time":     slot.End,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - build query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// ExistsForStudentOnDate есть ли у студента бронирование на дату
func (r *Repository) ExistsForStudentOnDate(ctx context.Context, studentID string, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{
			"student_id":   studentID,
			"booking_date": date.Format(domain.DateFormat),
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForStudentOnDate - build query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForStudentOnDate - scan: %w", ErrScanRow, err)
	}
	return true, nil
}

// MarkPaid отмечает оплату бронирования
func (r *Repository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("fees_paid", true).
		Set("payment_timestamp", paidAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MarkPaid - build update query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkPaid - execute update: %w", ErrExecQuery, err)
	}
	return booking, nil
}

// Delete удаляет бронирование, освобождая место в слоте
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		paymentAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.StudentID,
		&booking.TeacherID,
		&booking.Subject,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.BookedAt,
		&booking.FeesPaid,
		&paymentAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentAt.Valid {
		t := paymentAt.Time
		booking.PaymentTimestamp = &t
	}
	return &booking, nil
}
