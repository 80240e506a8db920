package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/booking"
)

// Причины отказа для метрик
const (
	ReasonSlotFull  = "slot_full"
	ReasonDuplicate = "duplicate"
	ReasonUnknown   = "unknown_student"
	ReasonStore     = "store_unavailable"
)

// Request запись студента в конкретный экземпляр слота
type Request struct {
	StudentID string
	Slot      domain.Slot
	Source    string // domain.SourceInteractive | domain.SourceSweeper
}

// Service атомарная запись в слот: блокировка слота, подсчет, проверка дня студента, вставка.
// Общая для интерактивной записи и автоназначения
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	clock       Clock
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса резервирования
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	clock Clock,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

// Reserve создает бронирование, если в слоте есть место и у студента нет записи на эту дату.
// Возвращает *domain.SlotFullError, domain.ErrDuplicateBooking или domain.ErrStoreUnavailable
func (s *Service) Reserve(ctx context.Context, req Request) (*domain.Booking, error) {
	slot := req.Slot
	var created *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.LockSlot(txCtx, slot); err != nil {
			return storeError("lock slot", err)
		}

		count, err := s.bookingRepo.CountBySlot(txCtx, slot)
		if err != nil {
			return storeError("count slot bookings", err)
		}
		if count >= slot.Capacity {
			return domain.NewSlotFullError(slot.Capacity)
		}

		exists, err := s.bookingRepo.ExistsForStudentOnDate(txCtx, req.StudentID, slot.Date)
		if err != nil {
			return storeError("check student day", err)
		}
		if exists {
			return fmt.Errorf("%w: student=%s date=%s", domain.ErrDuplicateBooking,
				req.StudentID, slot.Date.Format(domain.DateFormat))
		}

		created, err = s.bookingRepo.Create(txCtx, &domain.Booking{
			StudentID:   req.StudentID,
			TeacherID:   slot.TeacherID,
			Subject:     slot.Subject,
			BookingDate: slot.Date,
			StartTime:   slot.Start,
			EndTime:     slot.End,
			BookedAt:    s.clock.Now(),
		})
		if errors.Is(err, bookingRepo.ErrDuplicateStudentDay) {
			return fmt.Errorf("%w: %w", domain.ErrDuplicateBooking, err)
		}
		if errors.Is(err, bookingRepo.ErrUnknownUser) {
			return fmt.Errorf("%w: Reserve - student %s is not registered: %w", domain.ErrNotFound, req.StudentID, err)
		}
		if err != nil {
			return storeError("create booking", err)
		}
		return nil
	})

	if err != nil {
		if !domain.IsCoreError(err) {
			err = storeError("transaction", err)
		}
		s.reject(req, err)
		return nil, err
	}

	s.metrics.IncBookingCreated(req.Source)
	s.logger.Info("Reserve: booking id=%s student=%s teacher=%s start=%s source=%s",
		created.ID, req.StudentID, slot.TeacherID, slot.Start.Format(domain.TimeFormat), req.Source)
	return created, nil
}

func (s *Service) reject(req Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotFull):
		s.metrics.IncBookingRejected(ReasonSlotFull)
		s.logger.Warn("Reserve: slot %s is full (capacity=%d), student=%s", req.Slot.Key(), req.Slot.Capacity, req.StudentID)
	case errors.Is(err, domain.ErrDuplicateBooking):
		s.metrics.IncBookingRejected(ReasonDuplicate)
		s.logger.Warn("Reserve: student=%s already booked on %s", req.StudentID, req.Slot.Date.Format(domain.DateFormat))
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.IncBookingRejected(ReasonUnknown)
		s.logger.Warn("Reserve: student=%s is not registered", req.StudentID)
	default:
		s.metrics.IncBookingRejected(ReasonStore)
		s.logger.Error("Reserve: student=%s slot=%s: %v", req.StudentID, req.Slot.Key(), err)
	}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: Reserve - %s: %w", domain.ErrStoreUnavailable, op, err)
}
