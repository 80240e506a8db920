package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/memory"
	userRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ClassBookingService/migrations"
	"github.com/m04kA/SMC-ClassBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ClassBookingService/pkg/txmanager"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	ListActiveStudents(ctx context.Context) ([]*domain.User, error)
}

type availabilityStore interface {
	Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
	GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) ([]*domain.Availability, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Availability, error)
	LockTeacherDay(ctx context.Context, teacherID string, date time.Time) error
}

type bookingStore interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	LockSlot(ctx context.Context, slot domain.Slot) error
	CountBySlot(ctx context.Context, slot domain.Slot) (int, error)
	ExistsForStudentOnDate(ctx context.Context, studentID string, date time.Time) (bool, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории выбранного драйвера
type storage struct {
	users          userStore
	availabilities availabilityStore
	bookings       bookingStore
	tx             transactionManager

	db *sql.DB // nil для memory
}

func newMemoryStorage() *storage {
	store := memory.NewStore()
	return &storage{
		users:          store.Users(),
		availabilities: store.Availabilities(),
		bookings:       store.Bookings(),
		tx:             store.TxManager(),
	}
}

// newPostgresStorage подключается к базе, применяет миграции и оборачивает соединение метриками
func newPostgresStorage(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, stopCh <-chan struct{}, logger Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	version, err := migrations.Version(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("Database schema at version %d", version)

	wrapped := dbmetrics.WrapWithDefault(db, m, stopCh)
	retry := txmanager.DefaultRetryPolicy
	retry.MaxRetries = cfg.TxRetries

	return &storage{
		users:          userRepo.NewRepository(wrapped),
		availabilities: availabilityRepo.NewRepository(wrapped),
		bookings:       bookingRepo.NewRepository(wrapped),
		tx:             txmanager.NewTransactionManager(wrapped, retry),
		db:             wrapped.Unwrap(),
	}, nil
}
