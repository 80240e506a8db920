package auto_assign

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Result итог прогона автоназначения
type Result struct {
	TargetDate    time.Time
	Assigned      int
	Bookings      []*domain.Booking
	Unassigned    []string // студенты, которым не хватило мест
	AlreadyBooked int      // успели записаться сами во время прогона
	FreeSeats     int      // свободных мест осталось после прогона
	Skipped       bool     // прогон на эту дату уже выполняется
}
