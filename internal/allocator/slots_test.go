package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

var day = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func window(teacher string, from, to time.Time, capacity int) *domain.Availability {
	return &domain.Availability{
		TeacherID:       teacher,
		Subject:         "math",
		TargetDate:      day,
		WindowStart:     from,
		WindowEnd:       to,
		CapacityPerSlot: capacity,
	}
}

func booking(teacher string, slot domain.Slot) *domain.Booking {
	return &domain.Booking{TeacherID: teacher, BookingDate: day, StartTime: slot.Start, EndTime: slot.End}
}

func TestEnumerateSlotsCoversWindow(t *testing.T) {
	windows := []*domain.Availability{
		window("t1", at(10, 0), at(13, 0), 2),
		window("t1", at(9, 30), at(12, 0), 1),
		window("t1", at(14, 0), at(16, 45), 1),
		window("t1", at(8, 0), at(8, 20), 1),
	}

	for _, a := range windows {
		slots := EnumerateSlots(a)
		require.NotEmpty(t, slots)

		assert.Equal(t, a.WindowStart, slots[0].Start)
		assert.Equal(t, a.WindowEnd, slots[len(slots)-1].End)
		for i, s := range slots {
			assert.False(t, s.Start.Before(a.WindowStart))
			assert.False(t, s.End.After(a.WindowEnd))
			assert.True(t, s.Start.Before(s.End))
			assert.Equal(t, a.Capacity(), s.Capacity)
			if i > 0 {
				assert.Equal(t, slots[i-1].End, s.Start, "slots must be contiguous")
			}
		}
	}
}

func TestEnumerateSlotsPartialTail(t *testing.T) {
	slots := EnumerateSlots(window("t1", at(14, 0), at(16, 30), 1))

	require.Len(t, slots, 3)
	assert.Equal(t, at(16, 0), slots[2].Start)
	assert.Equal(t, at(16, 30), slots[2].End)
}

func TestEnumerateSlotsEmptyWindow(t *testing.T) {
	assert.Empty(t, EnumerateSlots(window("t1", at(10, 0), at(10, 0), 1)))
	assert.Empty(t, EnumerateSlots(nil))
}

func TestFindContainingSlot(t *testing.T) {
	list := []*domain.Availability{
		window("t1", at(10, 0), at(13, 0), 2),
		window("t1", at(15, 30), at(17, 30), 1),
	}

	tests := []struct {
		name      string
		requested time.Time
		found     bool
		start     time.Time
	}{
		{name: "window start", requested: at(10, 0), found: true, start: at(10, 0)},
		{name: "inside first slot", requested: at(10, 45), found: true, start: at(10, 0)},
		{name: "last slot", requested: at(12, 0), found: true, start: at(12, 0)},
		{name: "window end is excluded", requested: at(13, 0), found: false},
		{name: "before window", requested: at(9, 59), found: false},
		{name: "grid relative to window start", requested: at(16, 0), found: true, start: at(15, 30)},
		{name: "between windows", requested: at(14, 0), found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := FindContainingSlot(list, tt.requested)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.start, slot.Start)
				assert.Equal(t, tt.start.Add(time.Hour), slot.End)
			}
		})
	}
}

func TestRemainingCapacity(t *testing.T) {
	a := window("t1", at(10, 0), at(13, 0), 2)
	slots := EnumerateSlots(a)
	first := slots[0]

	assert.Equal(t, 2, RemainingCapacity(first, nil))

	bookings := []*domain.Booking{booking("t1", first)}
	assert.Equal(t, 1, RemainingCapacity(first, bookings))
	assert.Equal(t, 2, RemainingCapacity(slots[1], bookings))

	bookings = append(bookings, booking("t1", first), booking("t1", first))
	assert.Equal(t, 0, RemainingCapacity(first, bookings))

	// другой преподаватель на то же время не занимает слот
	assert.Equal(t, 2, RemainingCapacity(slots[1], []*domain.Booking{booking("t2", slots[1])}))
}

func TestTableOrder(t *testing.T) {
	availabilities := []*domain.Availability{
		window("t2", at(14, 0), at(15, 0), 1),
		window("t1", at(10, 0), at(12, 0), 1),
		window("t2", at(9, 0), at(10, 0), 1),
	}
	first := EnumerateSlots(availabilities[1])[0]

	table := BuildTable(availabilities, []*domain.Booking{booking("t1", first)})

	teachers := table.Teachers()
	require.Len(t, teachers, 2)
	assert.Equal(t, "t2", teachers[0].TeacherID)
	assert.Equal(t, at(9, 0), teachers[0].Entries[0].Slot.Start)
	assert.Equal(t, at(14, 0), teachers[0].Entries[1].Slot.Start)
	assert.Equal(t, 1, teachers[1].Entries[0].Booked)

	e, ok := table.FirstAvailable()
	require.True(t, ok)
	assert.Equal(t, "t2", e.Slot.TeacherID)
	assert.Equal(t, at(9, 0), e.Slot.Start)
	assert.Equal(t, 3, table.FreeSeats())

	e.MarkFull()
	e, ok = table.FirstAvailable()
	require.True(t, ok)
	assert.Equal(t, at(14, 0), e.Slot.Start)

	e.Booked++
	e, ok = table.FirstAvailable()
	require.True(t, ok)
	assert.Equal(t, "t1", e.Slot.TeacherID)
	assert.Equal(t, at(11, 0), e.Slot.Start)

	e.MarkFull()
	_, ok = table.FirstAvailable()
	assert.False(t, ok)
}
