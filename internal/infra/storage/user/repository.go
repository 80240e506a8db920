package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/psqlbuilder"
)

const (
	table = "users"

	codeUniqueViolation = "23505"
)

var columns = []string{"id", "role", "first_name", "last_name", "email", "phone", "is_active", "created_at"}

// Repository профили студентов и преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет пользователя; пустой ID заменяется сгенерированным
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	created := *u
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(created.ID, created.Role, created.FirstName, created.LastName, created.Email,
			created.Phone, created.IsActive, created.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return nil, fmt.Errorf("%w: Create - id=%s email=%s", ErrUserExists, created.ID, created.Email)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return &created, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %w", ErrScanRow, err)
	}
	return u, nil
}

// GetByIDs пользователи по списку ID; отсутствующие просто не попадают в ответ
func (r *Repository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	result := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	users, err := r.list(ctx, "GetByIDs", squirrel.Eq{"id": ids})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

// ListActiveStudents активные студенты в порядке регистрации
func (r *Repository) ListActiveStudents(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, "ListActiveStudents", squirrel.Eq{"role": domain.RoleStudent, "is_active": true})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u     domain.User
		phone sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Role, &u.FirstName, &u.LastName, &u.Email, &phone, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	if phone.Valid {
		p := phone.String
		u.Phone = &p
	}
	return &u, nil
}
