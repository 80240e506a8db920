package api

import (
	"net/http"

	"github.com/gorilla/mux"

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
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
)

// Handlers обработчики всех маршрутов
type Handlers struct {
	PublishAvailability    *publishAvailabilityHandler.Handler
	GetTeacherReservations *getTeacherReservationsHandler.Handler
	GetAvailableSlots      *getAvailableSlotsHandler.Handler
	BookSlot               *bookSlotHandler.Handler
	GetStudentBookings     *getStudentBookingsHandler.Handler
	GetBooking             *getBookingHandler.Handler
	CancelBooking          *cancelBookingHandler.Handler
	MarkPaid               *markPaidHandler.Handler
	RunSweep               *runSweepHandler.Handler
	RegisterUser           *registerUserHandler.Handler
	Health                 *healthHandler.Handler
}

// Options общие middleware роутера
type Options struct {
	Metrics     *metrics.Metrics // nil - без метрик
	MetricsPath string
	RateLimiter *middleware.RateLimiter
	Logger      middleware.Logger
}

// NewRouter настраивает маршруты /api/v1
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	if opts.Logger != nil {
		r.Use(middleware.Logging(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Middleware)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/slots/available", h.GetAvailableSlots.Handle).Methods(http.MethodGet)

	// Вызываются доверенными системами: платежный шлюз, внешний cron и сервис идентификации
	api.HandleFunc("/payments/bookings/{bookingId}", h.MarkPaid.Handle).Methods(http.MethodPost)
	api.HandleFunc("/internal/sweeps", h.RunSweep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/internal/users", h.RegisterUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// TEACHER ROUTES
	// ============================================================

	teachers := api.PathPrefix("/teachers").Subrouter()
	teachers.Use(middleware.RequireRole(domain.RoleTeacher))

	teachers.HandleFunc("/availability", h.PublishAvailability.Handle).Methods(http.MethodPost)
	teachers.HandleFunc("/reservations", h.GetTeacherReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// STUDENT ROUTES
	// ============================================================

	students := api.PathPrefix("/students").Subrouter()
	students.Use(middleware.RequireRole(domain.RoleStudent))

	students.HandleFunc("/bookings", h.BookSlot.Handle).Methods(http.MethodPost)
	students.HandleFunc("/bookings", h.GetStudentBookings.Handle).Methods(http.MethodGet)
	students.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	students.HandleFunc("/bookings/{bookingId}", h.CancelBooking.Handle).Methods(http.MethodDelete)

	return r
}
