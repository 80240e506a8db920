package allocator

import (
	"sort"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Entry слот со счетчиком занятых мест
type Entry struct {
	Slot   domain.Slot
	Booked int
}

// HasRoom есть ли свободное место
func (e *Entry) HasRoom() bool {
	return e.Booked < e.Slot.Capacity
}

// MarkFull помечает слот заполненным (хранилище сообщило, что мест нет)
func (e *Entry) MarkFull() {
	e.Booked = e.Slot.Capacity
}

// TeacherSlots слоты одного преподавателя в хронологическом порядке
type TeacherSlots struct {
	TeacherID string
	Entries   []*Entry
}

// Table таблица загрузки слотов на дату для автоназначения.
// Преподаватели идут в порядке первого появления в списке окон
type Table struct {
	teachers []*TeacherSlots
}

// BuildTable строит таблицу по окнам и уже существующим бронированиям
func BuildTable(availabilities []*domain.Availability, bookings []*domain.Booking) *Table {
	t := &Table{}
	index := make(map[string]*TeacherSlots)

	for _, a := range availabilities {
		ts, ok := index[a.TeacherID]
		if !ok {
			ts = &TeacherSlots{TeacherID: a.TeacherID}
			index[a.TeacherID] = ts
			t.teachers = append(t.teachers, ts)
		}
		for _, slot := range EnumerateSlots(a) {
			ts.Entries = append(ts.Entries, &Entry{Slot: slot, Booked: CountBookings(slot, bookings)})
		}
	}

	for _, ts := range t.teachers {
		sort.SliceStable(ts.Entries, func(i, j int) bool {
			return ts.Entries[i].Slot.Start.Before(ts.Entries[j].Slot.Start)
		})
	}

	return t
}

// Teachers преподаватели в порядке обхода
func (t *Table) Teachers() []*TeacherSlots {
	return t.teachers
}

// FirstAvailable первый слот со свободным местом: преподаватели по порядку, слоты по времени
func (t *Table) FirstAvailable() (*Entry, bool) {
	for _, ts := range t.teachers {
		for _, e := range ts.Entries {
			if e.HasRoom() {
				return e, true
			}
		}
	}
	return nil, false
}

// FreeSeats суммарное число свободных мест
func (t *Table) FreeSeats() int {
	free := 0
	for _, ts := range t.teachers {
		for _, e := range ts.Entries {
			if e.HasRoom() {
				free += e.Slot.Capacity - e.Booked
			}
		}
	}
	return free
}
