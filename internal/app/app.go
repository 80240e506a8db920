package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ClassBookingService/internal/api"
	bookSlotHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/cancel_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_booking"
	getStudentBookingsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_student_bookings"
	getTeacherReservationsHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_teacher_reservations"
	healthHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/health"
	markPaidHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/mark_paid"
	publishAvailabilityHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/publish_availability"
	registerUserHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/register_user"
	runSweepHandler "github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/run_sweep"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/lock"
	"github.com/m04kA/SMC-ClassBookingService/internal/scheduler"
	"github.com/m04kA/SMC-ClassBookingService/internal/seed"
	bookingsService "github.com/m04kA/SMC-ClassBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reservation"
	autoAssignUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
	bookSlotUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/book_slot"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"
	publishAvailabilityUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/publish_availability"
	registerUserUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/register_user"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Option настройка сборки приложения
type Option func(*App)

// WithClock подменяет часы сервиса
func WithClock(c Clock) Option {
	return func(a *App) { a.clock = c }
}

// App собранный сервис: хранилище, блокировка, use cases и HTTP роутер
type App struct {
	cfg     *config.Config
	logger  Logger
	clock   Clock
	metrics *metrics.Metrics

	storage     *storage
	redisClient *redis.Client
	locker      autoAssignUC.Locker

	sweeper   *autoAssignUC.UseCase
	registrar *registerUserUC.UseCase
	publisher *publishAvailabilityUC.UseCase
	handler   http.Handler

	stopMetricsCh chan struct{}
	closeOnce     sync.Once
}

// New собирает приложение по конфигурации
func New(ctx context.Context, cfg *config.Config, logger Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:           cfg,
		logger:        logger,
		clock:         clock.Real{Location: cfg.Location()},
		stopMetricsCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		logger.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if err := a.initStorage(ctx); err != nil {
		return nil, err
	}

	if err := a.initLocker(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.initHandlers()

	if cfg.Storage.SeedDemoData {
		if _, err := a.Seed(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *App) initStorage(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		a.storage = newMemoryStorage()
		a.logger.Warn("Using in-memory storage, data is lost on restart")
		return nil
	default:
		s, err := newPostgresStorage(ctx, a.cfg.Database, a.metrics, a.stopMetricsCh, a.logger)
		if err != nil {
			return err
		}
		a.storage = s
		return nil
	}
}

func (a *App) initLocker(ctx context.Context) error {
	if !a.cfg.Redis.Enabled() {
		a.locker = lock.NewLocalLocker()
		a.logger.Info("Sweep lock: in-process")
		return nil
	}

	a.redisClient = lock.NewRedisClient(a.cfg.Redis)
	if err := lock.Ping(ctx, a.redisClient); err != nil {
		return fmt.Errorf("connect to redis %s: %w", a.cfg.Redis.Address, err)
	}
	a.locker = lock.NewRedisLocker(a.redisClient, a.cfg.App.Name+":")
	a.logger.Info("Sweep lock: redis at %s", a.cfg.Redis.Address)
	return nil
}

func (a *App) initHandlers() {
	s := a.storage

	reserver := reservation.NewService(s.bookings, s.tx, a.clock, a.metrics, a.logger)
	bookingSvc := bookingsService.NewService(s.bookings, s.users, s.tx, a.clock, a.logger)

	a.publisher = publishAvailabilityUC.NewUseCase(s.availabilities, s.tx, a.clock, a.logger)
	a.registrar = registerUserUC.NewUseCase(s.users, a.clock, a.logger)
	listSlots := getAvailableSlotsUC.NewUseCase(s.availabilities, s.bookings, s.users, a.clock, a.logger)
	book := bookSlotUC.NewUseCase(s.availabilities, reserver, a.clock, a.metrics, a.logger)
	a.sweeper = autoAssignUC.NewUseCase(
		s.users,
		s.availabilities,
		s.bookings,
		reserver,
		a.locker,
		a.cfg.LockTTL(),
		a.clock,
		a.metrics,
		a.logger,
	)

	checks := map[string]healthHandler.Pinger{}
	if s.db != nil {
		checks["database"] = sqlPinger{db: s.db}
	}
	if a.redisClient != nil {
		checks["redis"] = redisPinger{client: a.redisClient}
	}

	a.handler = api.NewRouter(api.Handlers{
		PublishAvailability:    publishAvailabilityHandler.NewHandler(a.publisher, a.logger),
		GetTeacherReservations: getTeacherReservationsHandler.NewHandler(bookingSvc, a.logger),
		GetAvailableSlots:      getAvailableSlotsHandler.NewHandler(listSlots, a.logger),
		BookSlot:               bookSlotHandler.NewHandler(book, a.logger),
		GetStudentBookings:     getStudentBookingsHandler.NewHandler(bookingSvc, a.logger),
		GetBooking:             getBookingHandler.NewHandler(bookingSvc, a.logger),
		CancelBooking:          cancelBookingHandler.NewHandler(bookingSvc, a.logger),
		MarkPaid:               markPaidHandler.NewHandler(bookingSvc, a.logger),
		RunSweep:               runSweepHandler.NewHandler(a.sweeper, a.logger),
		RegisterUser:           registerUserHandler.NewHandler(a.registrar, a.logger),
		Health:                 healthHandler.NewHandler(checks, a.logger),
	}, api.Options{
		Metrics:     a.metrics,
		MetricsPath: a.cfg.Metrics.Path,
		RateLimiter: middleware.NewRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst),
		Logger:      a.logger,
	})
}

// Handler HTTP обработчик сервиса
func (a *App) Handler() http.Handler {
	return a.handler
}

// Sweeper use case автоназначения для разового запуска
func (a *App) Sweeper() *autoAssignUC.UseCase {
	return a.sweeper
}

// Seed заводит демо преподавателей, студентов и окна на завтра
func (a *App) Seed(ctx context.Context) (*seed.Result, error) {
	return seed.Run(ctx, a.registrar, a.publisher, a.logger)
}

// NewScheduler периодический запуск автоназначения по настройкам sweeper
func (a *App) NewScheduler() *scheduler.Scheduler {
	return scheduler.New(a.sweeper, a.cfg.SweepInterval(), a.cfg.Sweeper.RunOnStart, a.logger)
}

// Close освобождает соединения. Повторный вызов ничего не делает
func (a *App) Close() {
	a.closeOnce.Do(a.close)
}

func (a *App) close() {
	close(a.stopMetricsCh)

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Failed to close redis client: %v", err)
		}
	}
	if a.storage != nil && a.storage.db != nil {
		if err := a.storage.db.Close(); err != nil {
			a.logger.Error("Failed to close database: %v", err)
		}
	}
}

type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return lock.Ping(ctx, p.client)
}
