package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

type bookingRecord struct {
	booking domain.Booking
}

// Bookings бронирования в памяти
type Bookings struct {
	s *Store
}

// Create повторяет уникальный индекс (student_id, booking_date)
func (r *Bookings) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	rec := &bookingRecord{booking: *b}
	rec.booking.ID = r.s.newID()

	var err error
	r.s.write(ctx, func() {
		for _, existing := range r.s.bookings {
			if existing.booking.StudentID == b.StudentID && clock.SameDay(existing.booking.BookingDate, b.BookingDate) {
				err = fmt.Errorf("%w: Create - student=%s date=%s", bookingRepo.ErrDuplicateStudentDay,
					b.StudentID, b.BookingDate.Format(domain.DateFormat))
				return
			}
		}
		r.s.bookings = append(r.s.bookings, rec)
	})
	if err != nil {
		return nil, err
	}

	out := rec.booking
	return &out, nil
}

func (r *Bookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, rec := r.find(id); rec != nil {
		out := rec.booking
		return &out, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

// GetWithFilter выборка по фильтру, упорядоченная по началу занятия
func (r *Bookings) GetWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.Booking
	for _, rec := range r.s.bookings {
		b := rec.booking
		if filter.StudentID != nil && b.StudentID != *filter.StudentID {
			continue
		}
		if filter.TeacherID != nil && b.TeacherID != *filter.TeacherID {
			continue
		}
		if filter.BookingDate != nil && !clock.SameDay(b.BookingDate, *filter.BookingDate) {
			continue
		}
		if filter.FromDate != nil && b.BookingDate.Format(domain.DateFormat) < filter.FromDate.Format(domain.DateFormat) {
			continue
		}
		result = append(result, &b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

// LockSlot транзакции в памяти уже последовательны
func (r *Bookings) LockSlot(_ context.Context, _ domain.Slot) error {
	return nil
}

func (r *Bookings) CountBySlot(_ context.Context, slot domain.Slot) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, rec := range r.s.bookings {
		if slot.Matches(&rec.booking) {
			count++
		}
	}
	return count, nil
}

func (r *Bookings) ExistsForStudentOnDate(_ context.Context, studentID string, date time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.bookings {
		if rec.booking.StudentID == studentID && clock.SameDay(rec.booking.BookingDate, date) {
			return true, nil
		}
	}
	return false, nil
}

// MarkPaid заменяет запись новой копией, старая остается в снимках транзакций
func (r *Bookings) MarkPaid(ctx context.Context, id string, paidAt time.Time) (*domain.Booking, error) {
	var updated *domain.Booking
	r.s.write(ctx, func() {
		i, rec := r.find(id)
		if rec == nil {
			return
		}
		next := &bookingRecord{booking: rec.booking}
		next.booking.FeesPaid = true
		next.booking.PaymentTimestamp = &paidAt
		r.s.bookings[i] = next

		out := next.booking
		updated = &out
	})

	if updated == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return updated, nil
}

func (r *Bookings) Delete(ctx context.Context, id string) error {
	found := false
	r.s.write(ctx, func() {
		i, rec := r.find(id)
		if rec == nil {
			return
		}
		found = true
		bookings := make([]*bookingRecord, 0, len(r.s.bookings)-1)
		bookings = append(bookings, r.s.bookings[:i]...)
		r.s.bookings = append(bookings, r.s.bookings[i+1:]...)
	})

	if !found {
		return bookingRepo.ErrBookingNotFound
	}
	return nil
}

// find вызывается под mu
func (r *Bookings) find(id string) (int, *bookingRecord) {
	for i, rec := range r.s.bookings {
		if rec.booking.ID == id {
			return i, rec
		}
	}
	return -1, nil
}
