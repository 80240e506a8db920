package domain

import (
	"fmt"
	"time"
)

// Slot часовой интервал внутри окна преподавателя. Не хранится, вычисляется из Availability
type Slot struct {
	TeacherID string
	Subject   string
	Date      time.Time
	Start     time.Time
	End       time.Time
	Capacity  int
}

// Key идентификатор экземпляра слота (преподаватель, дата, начало)
func (s Slot) Key() string {
	return fmt.Sprintf("slot:%s:%s:%d", s.TeacherID, s.Date.Format(DateFormat), s.Start.Unix())
}

// Matches проверяет, что бронирование занимает именно этот экземпляр слота
func (s Slot) Matches(b *Booking) bool {
	return b.TeacherID == s.TeacherID &&
		sameDate(b.BookingDate, s.Date) &&
		b.StartTime.Equal(s.Start) &&
		b.EndTime.Equal(s.End)
}

func sameDate(a, b time.Time) bool {
	return a.Format(DateFormat) == b.Format(DateFormat)
}
