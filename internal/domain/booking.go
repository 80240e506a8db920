package domain

import "time"

// Booking подтвержденная запись студента в слот преподавателя
type Booking struct {
	ID               string
	StudentID        string
	TeacherID        string
	Subject          string
	BookingDate      time.Time
	StartTime        time.Time
	EndTime          time.Time
	BookedAt         time.Time
	FeesPaid         bool
	PaymentTimestamp *time.Time
}

// IsOwnedBy проверяет владельца бронирования
func (b *Booking) IsOwnedBy(studentID string) bool {
	return b.StudentID == studentID
}

// Slot экземпляр слота, который занимает бронирование
func (b *Booking) Slot(capacity int) Slot {
	return Slot{
		TeacherID: b.TeacherID,
		Subject:   b.Subject,
		Date:      b.BookingDate,
		Start:     b.StartTime,
		End:       b.EndTime,
		Capacity:  capacity,
	}
}

// BookingFilter фильтр выборки бронирований. Пустые поля не участвуют в условии
type BookingFilter struct {
	StudentID   *string
	TeacherID   *string
	BookingDate *time.Time
	FromDate    *time.Time // booking_date >= FromDate
}
