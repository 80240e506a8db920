package book_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/allocator"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reservation"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

// Причины отказа для метрик
const (
	ReasonInvalidInput   = "invalid_input"
	ReasonNoAvailability = "no_availability"
	ReasonOutOfRange     = "out_of_range"
)

// UseCase use case записи студента в слот преподавателя на завтра
type UseCase struct {
	availabilityRepo AvailabilityRepository
	reserver         Reserver
	clock            Clock
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	reserver Reserver,
	clock Clock,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		reserver:         reserver,
		clock:            clock,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case записи.
// Время начала сопоставляется со слотом сетки окна, в бронировании сохраняются границы слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: student=%s, teacher=%s, time=%s", req.StudentID, req.TeacherID, req.StartTime)

	// 1. Валидация входных данных
	start, err := validateRequest(req)
	if err != nil {
		uc.metrics.IncBookingRejected(ReasonInvalidInput)
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Целевая дата - завтра по часам сервиса
	targetDate := clock.Tomorrow(uc.clock.Now())
	requested, err := start.On(targetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// 3. Окна преподавателя на дату
	availabilities, err := uc.availabilityRepo.GetByTeacherAndDate(ctx, req.TeacherID, targetDate)
	if err != nil {
		uc.logger.Error("BookSlot: failed to get availability for teacher=%s: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: BookSlot - get availability: %w", domain.ErrStoreUnavailable, err)
	}
	if len(availabilities) == 0 {
		uc.metrics.IncBookingRejected(ReasonNoAvailability)
		uc.logger.Warn("BookSlot: teacher=%s has no availability on %s", req.TeacherID, targetDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: teacher=%s date=%s", domain.ErrNoAvailability, req.TeacherID, targetDate.Format(domain.DateFormat))
	}

	// 4. Слот, содержащий запрошенное время
	slot, ok := allocator.FindContainingSlot(availabilities, requested)
	if !ok {
		uc.metrics.IncBookingRejected(ReasonOutOfRange)
		uc.logger.Warn("BookSlot: time %s is outside of teacher=%s windows", start, req.TeacherID)
		return nil, fmt.Errorf("%w: %s", domain.ErrOutOfRange, start)
	}

	// 5-7. Подсчет мест, проверка дня студента и вставка одной транзакцией
	booking, err := uc.reserver.Reserve(ctx, reservation.Request{
		StudentID: req.StudentID,
		Slot:      slot,
		Source:    domain.SourceInteractive,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: booking id=%s created for student=%s", booking.ID, req.StudentID)
	return toResponse(booking), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		StudentID:   b.StudentID,
		TeacherID:   b.TeacherID,
		Subject:     b.Subject,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		BookedAt:    b.BookedAt,
		FeesPaid:    b.FeesPaid,
	}
}
