package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	txManager   TransactionManager
	clock       Clock
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	clk Clock,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		clock:       clk,
		logger:      logger,
	}
}

// Cancel удаляет бронирование студента, освобождая одно место в слоте.
// Отменить можно только собственное бронирование
func (s *Service) Cancel(ctx context.Context, bookingID, studentID string) error {
	s.logger.Info("Cancel: booking id=%s by student=%s", bookingID, studentID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return s.mapRepoError("Cancel", bookingID, err)
		}

		if !booking.IsOwnedBy(studentID) {
			return fmt.Errorf("%w: booking %s belongs to another student", domain.ErrForbidden, bookingID)
		}

		if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
			return s.mapRepoError("Cancel", bookingID, err)
		}
		return nil
	})
	if err != nil {
		if !domain.IsCoreError(err) {
			err = fmt.Errorf("%w: Cancel - transaction: %w", domain.ErrStoreUnavailable, err)
		}
		s.logger.Warn("Cancel: booking id=%s: %v", bookingID, err)
		return err
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return nil
}

// MarkPaid отмечает оплату. Вызывается платежным вебхуком, подлинность платежа не проверяется
func (s *Service) MarkPaid(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("MarkPaid: booking id=%s", bookingID)

	booking, err := s.bookingRepo.MarkPaid(ctx, bookingID, s.clock.Now())
	if err != nil {
		err = s.mapRepoError("MarkPaid", bookingID, err)
		s.logger.Warn("MarkPaid: booking id=%s: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("MarkPaid: booking id=%s paid at %s", bookingID, booking.PaymentTimestamp.Format(domain.DateFormat+" "+domain.TimeFormat))
	return models.FromDomainBooking(booking), nil
}

// GetStudentBooking бронирование по ID; чужое бронирование недоступно
func (s *Service) GetStudentBooking(ctx context.Context, bookingID, studentID string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError("GetStudentBooking", bookingID, err)
	}

	if !booking.IsOwnedBy(studentID) {
		s.logger.Warn("GetStudentBooking: booking id=%s requested by student=%s", bookingID, studentID)
		return nil, fmt.Errorf("%w: booking %s belongs to another student", domain.ErrForbidden, bookingID)
	}

	return models.FromDomainBooking(booking), nil
}

// GetStudentBookings предстоящие бронирования студента, начиная с сегодняшнего дня
func (s *Service) GetStudentBookings(ctx context.Context, studentID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetStudentBookings: student=%s", studentID)

	today := clock.Midnight(s.clock.Now())
	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingFilter{
		StudentID: &studentID,
		FromDate:  &today,
	})
	if err != nil {
		s.logger.Error("GetStudentBookings: repository error for student=%s: %v", studentID, err)
		return nil, fmt.Errorf("%w: GetStudentBookings - repository error: %w", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info("GetStudentBookings: fetched %d bookings for student=%s", len(bookings), studentID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTeacherReservations записи к преподавателю на завтра с контактами студентов.
// Бронирования, чей студент не найден, пропускаются
func (s *Service) GetTeacherReservations(ctx context.Context, teacherID string) (*models.TeacherReservationsResponse, error) {
	targetDate := clock.Tomorrow(s.clock.Now())
	s.logger.Info("GetTeacherReservations: teacher=%s date=%s", teacherID, targetDate.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingFilter{
		TeacherID:   &teacherID,
		BookingDate: &targetDate,
	})
	if err != nil {
		s.logger.Error("GetTeacherReservations: repository error for teacher=%s: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetTeacherReservations - get bookings: %w", domain.ErrStoreUnavailable, err)
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.StudentID)
	}

	students, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("GetTeacherReservations: failed to load students: %v", err)
		return nil, fmt.Errorf("%w: GetTeacherReservations - get students: %w", domain.ErrStoreUnavailable, err)
	}

	resp := &models.TeacherReservationsResponse{
		Date:         targetDate,
		Reservations: make([]*models.TeacherReservation, 0, len(bookings)),
	}
	for _, b := range bookings {
		student, ok := students[b.StudentID]
		if !ok {
			s.logger.Warn("GetTeacherReservations: student=%s of booking id=%s not found, skipping", b.StudentID, b.ID)
			continue
		}
		resp.Reservations = append(resp.Reservations, &models.TeacherReservation{
			Booking: models.FromDomainBooking(b),
			Student: models.FromDomainUser(student),
		})
	}

	s.logger.Info("GetTeacherReservations: %d reservations for teacher=%s", len(resp.Reservations), teacherID)
	return resp, nil
}

func (s *Service) mapRepoError(op, bookingID string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - repository error: %w", domain.ErrStoreUnavailable, op, err)
}
