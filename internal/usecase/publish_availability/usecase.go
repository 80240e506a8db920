package publish_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClassBookingService/internal/allocator"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

// UseCase публикация окна преподавателя на завтра
type UseCase struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	clock            Clock
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, txManager TransactionManager, clk Clock, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		clock:            clk,
		logger:           logger,
	}
}

// Execute проверяет окно и сохраняет его, если оно не пересекается с уже опубликованными
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublishAvailability: teacher=%s, subject=%s, date=%s, %s-%s, capacity=%d",
		req.TeacherID, req.Subject, req.Date, req.StartTime, req.EndTime, req.CapacityPerSlot)

	w, err := validateRequest(req, clock.Tomorrow(uc.clock.Now()))
	if err != nil {
		uc.logger.Warn("PublishAvailability: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Availability
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.availabilityRepo.LockTeacherDay(txCtx, req.TeacherID, w.date); err != nil {
			return fmt.Errorf("%w: PublishAvailability - lock: %w", domain.ErrStoreUnavailable, err)
		}

		existing, err := uc.availabilityRepo.GetByTeacherAndDate(txCtx, req.TeacherID, w.date)
		if err != nil {
			return fmt.Errorf("%w: PublishAvailability - get existing: %w", domain.ErrStoreUnavailable, err)
		}
		for _, a := range existing {
			if a.Overlaps(w.start, w.end) {
				return fmt.Errorf("%w: %s-%s intersects %s-%s", domain.ErrOverlap,
					w.start.Format(domain.TimeFormat), w.end.Format(domain.TimeFormat),
					a.WindowStart.Format(domain.TimeFormat), a.WindowEnd.Format(domain.TimeFormat))
			}
		}

		created, err = uc.availabilityRepo.Create(txCtx, &domain.Availability{
			TeacherID:       req.TeacherID,
			Subject:         w.subject,
			TargetDate:      w.date,
			WindowStart:     w.start,
			WindowEnd:       w.end,
			CapacityPerSlot: w.capacity,
			CreatedAt:       uc.clock.Now(),
		})
		if errors.Is(err, availabilityRepo.ErrUnknownTeacher) {
			return fmt.Errorf("%w: PublishAvailability - teacher %s is not registered: %w", domain.ErrNotFound, req.TeacherID, err)
		}
		if err != nil {
			return fmt.Errorf("%w: PublishAvailability - create: %w", domain.ErrStoreUnavailable, err)
		}
		return nil
	})
	if err != nil {
		if !domain.IsCoreError(err) {
			err = fmt.Errorf("%w: PublishAvailability - transaction: %w", domain.ErrStoreUnavailable, err)
		}
		uc.logger.Warn("PublishAvailability: teacher=%s: %v", req.TeacherID, err)
		return nil, err
	}

	uc.logger.Info("PublishAvailability: availability id=%s created for teacher=%s", created.ID, created.TeacherID)
	return &Response{
		ID:              created.ID,
		TeacherID:       created.TeacherID,
		Subject:         created.Subject,
		TargetDate:      created.TargetDate,
		WindowStart:     created.WindowStart,
		WindowEnd:       created.WindowEnd,
		CapacityPerSlot: created.CapacityPerSlot,
		SlotsCount:      len(allocator.EnumerateSlots(created)),
	}, nil
}
