package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/allocator"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

// UseCase use case получения свободных слотов на завтра
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	userRepo         UserRepository
	clock            Clock
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	clk Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		userRepo:         userRepo,
		clock:            clk,
		logger:           logger,
	}
}

// Execute строит сетку слотов всех окон на завтра с оставшейся вместимостью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	targetDate := clock.Tomorrow(uc.clock.Now())
	uc.logger.Info("GetAvailableSlots: date=%s", targetDate.Format(domain.DateFormat))

	availabilities, err := uc.availabilityRepo.GetByDate(ctx, targetDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availabilities: %v", err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - get availabilities: %w", domain.ErrStoreUnavailable, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingFilter{BookingDate: &targetDate})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - get bookings: %w", domain.ErrStoreUnavailable, err)
	}

	resp := &Response{Date: targetDate, Teachers: []TeacherSlots{}}
	index := make(map[string]int)

	for _, a := range availabilities {
		if req.TeacherID != nil && a.TeacherID != *req.TeacherID {
			continue
		}

		w := Window{
			AvailabilityID:  a.ID,
			Subject:         a.Subject,
			WindowStart:     a.WindowStart,
			WindowEnd:       a.WindowEnd,
			CapacityPerSlot: a.Capacity(),
			Slots:           []Slot{},
		}
		for _, s := range allocator.EnumerateSlots(a) {
			remaining := allocator.RemainingCapacity(s, bookings)
			if req.OnlyFree && remaining == 0 {
				continue
			}
			w.Slots = append(w.Slots, Slot{StartTime: s.Start, EndTime: s.End, Capacity: s.Capacity, Remaining: remaining})
		}

		i, ok := index[a.TeacherID]
		if !ok {
			i = len(resp.Teachers)
			index[a.TeacherID] = i
			resp.Teachers = append(resp.Teachers, TeacherSlots{TeacherID: a.TeacherID})
		}
		resp.Teachers[i].Windows = append(resp.Teachers[i].Windows, w)
	}

	uc.attachNames(ctx, resp)

	uc.logger.Info("GetAvailableSlots: %d teachers, %d bookings on %s",
		len(resp.Teachers), len(bookings), targetDate.Format(domain.DateFormat))
	return resp, nil
}

// attachNames подписывает преподавателей; ошибка профилей не ломает выдачу слотов
func (uc *UseCase) attachNames(ctx context.Context, resp *Response) {
	if len(resp.Teachers) == 0 {
		return
	}

	ids := make([]string, 0, len(resp.Teachers))
	for _, t := range resp.Teachers {
		ids = append(ids, t.TeacherID)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: teacher profiles unavailable: %v", err)
		return
	}
	for i := range resp.Teachers {
		if u, ok := users[resp.Teachers[i].TeacherID]; ok {
			resp.Teachers[i].TeacherName = u.FullName()
		}
	}
}
