// Package allocator чистая логика сетки слотов: без побочных эффектов,
// безопасна для конкурентного вызова
package allocator

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// EnumerateSlots нарезает окно на часовые слоты от WindowStart.
// Последний неполный шаг обрезается по WindowEnd
func EnumerateSlots(a *domain.Availability) []domain.Slot {
	if a == nil || !a.WindowStart.Before(a.WindowEnd) {
		return nil
	}

	slots := make([]domain.Slot, 0, int(a.WindowEnd.Sub(a.WindowStart)/domain.SlotDuration)+1)
	for start := a.WindowStart; start.Before(a.WindowEnd); start = start.Add(domain.SlotDuration) {
		slots = append(slots, slotAt(a, start))
	}
	return slots
}

// FindContainingSlot ищет первое окно, содержащее requested, и возвращает слот его сетки,
// в полуинтервал которого попадает requested. Сетка отсчитывается от начала окна, а не от часа
func FindContainingSlot(availabilities []*domain.Availability, requested time.Time) (domain.Slot, bool) {
	for _, a := range availabilities {
		if !a.Contains(requested) {
			continue
		}
		steps := requested.Sub(a.WindowStart) / domain.SlotDuration
		return slotAt(a, a.WindowStart.Add(steps*domain.SlotDuration)), true
	}
	return domain.Slot{}, false
}

// CountBookings число бронирований, занимающих ровно этот экземпляр слота
func CountBookings(slot domain.Slot, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if slot.Matches(b) {
			count++
		}
	}
	return count
}

// RemainingCapacity свободные места в слоте, не меньше нуля
func RemainingCapacity(slot domain.Slot, bookings []*domain.Booking) int {
	remaining := slot.Capacity - CountBookings(slot, bookings)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func slotAt(a *domain.Availability, start time.Time) domain.Slot {
	end := start.Add(domain.SlotDuration)
	if end.After(a.WindowEnd) {
		end = a.WindowEnd
	}
	return domain.Slot{
		TeacherID: a.TeacherID,
		Subject:   a.Subject,
		Date:      a.TargetDate,
		Start:     start,
		End:       end,
		Capacity:  a.Capacity(),
	}
}
