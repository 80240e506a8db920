package auto_assign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/allocator"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reservation"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

// Результаты прогона для метрик
const (
	RunCompleted = "completed"
	RunSkipped   = "skipped"
	RunFailed    = "failed"
)

// UseCase автоназначение студентов без записи на завтра в свободные слоты
type UseCase struct {
	userRepo         UserRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	reserver         Reserver
	locker           Locker
	lockTTL          time.Duration
	clock            Clock
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	reserver Reserver,
	locker Locker,
	lockTTL time.Duration,
	clk Clock,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		reserver:         reserver,
		locker:           locker,
		lockTTL:          lockTTL,
		clock:            clk,
		metrics:          metrics,
		logger:           logger,
	}
}

// LockKey ключ блокировки прогона на дату
func LockKey(date time.Time) string {
	return "sweep:" + date.Format(domain.DateFormat)
}

// Execute выполняет один прогон.
// Студенты обходятся в порядке загрузки, для каждого берется первый слот с местом:
// преподаватели в порядке публикации окон, слоты по времени.
// Каждая запись проходит через общую атомарную проверку, поэтому живые бронирования учитываются
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	targetDate := clock.Tomorrow(uc.clock.Now())
	result := &Result{TargetDate: targetDate}
	uc.logger.Info("AutoAssign: starting for date=%s", targetDate.Format(domain.DateFormat))

	release, ok, err := uc.locker.TryLock(ctx, LockKey(targetDate), uc.lockTTL)
	if err != nil {
		uc.metrics.IncSweepRun(RunFailed)
		uc.logger.Error("AutoAssign: failed to acquire lock: %v", err)
		return nil, fmt.Errorf("%w: AutoAssign - acquire lock: %w", domain.ErrStoreUnavailable, err)
	}
	if !ok {
		uc.metrics.IncSweepRun(RunSkipped)
		uc.logger.Warn("AutoAssign: run for %s is already in progress, skipping", targetDate.Format(domain.DateFormat))
		result.Skipped = true
		return result, nil
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			uc.logger.Warn("AutoAssign: failed to release lock: %v", err)
		}
	}()

	if err := uc.run(ctx, result); err != nil {
		uc.metrics.IncSweepRun(RunFailed)
		uc.logger.Error("AutoAssign: aborted after %d assignments: %v", result.Assigned, err)
		return nil, err
	}

	uc.metrics.IncSweepRun(RunCompleted)
	uc.metrics.AddSweepAssigned(result.Assigned)
	uc.logger.Info("AutoAssign: date=%s assigned=%d unassigned=%d already_booked=%d free_seats=%d",
		targetDate.Format(domain.DateFormat), result.Assigned, len(result.Unassigned), result.AlreadyBooked, result.FreeSeats)
	return result, nil
}

func (uc *UseCase) run(ctx context.Context, result *Result) error {
	targetDate := result.TargetDate

	students, err := uc.userRepo.ListActiveStudents(ctx)
	if err != nil {
		return fmt.Errorf("%w: AutoAssign - list students: %w", domain.ErrStoreUnavailable, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingFilter{BookingDate: &targetDate})
	if err != nil {
		return fmt.Errorf("%w: AutoAssign - get bookings: %w", domain.ErrStoreUnavailable, err)
	}

	availabilities, err := uc.availabilityRepo.GetByDate(ctx, targetDate)
	if err != nil {
		return fmt.Errorf("%w: AutoAssign - get availabilities: %w", domain.ErrStoreUnavailable, err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.StudentID] = struct{}{}
	}

	table := allocator.BuildTable(availabilities, bookings)
	uc.logger.Info("AutoAssign: date=%s students=%d teachers=%d free_seats=%d",
		targetDate.Format(domain.DateFormat), len(students), len(table.Teachers()), table.FreeSeats())

	for _, student := range students {
		if _, ok := booked[student.ID]; ok {
			continue
		}

		assigned, err := uc.assign(ctx, table, student.ID, result)
		if err != nil {
			return err
		}
		if !assigned {
			result.Unassigned = append(result.Unassigned, student.ID)
		}
	}
	result.FreeSeats = table.FreeSeats()
	return nil
}

// assign занимает первый подходящий слот. false - мест не осталось
func (uc *UseCase) assign(ctx context.Context, table *allocator.Table, studentID string, result *Result) (bool, error) {
	for {
		entry, ok := table.FirstAvailable()
		if !ok {
			return false, nil
		}

		booking, err := uc.reserver.Reserve(ctx, reservation.Request{
			StudentID: studentID,
			Slot:      entry.Slot,
			Source:    domain.SourceSweeper,
		})
		switch {
		case err == nil:
			entry.Booked++
			result.Assigned++
			result.Bookings = append(result.Bookings, booking)
			return true, nil
		case errors.Is(err, domain.ErrSlotFull):
			// слот заняли интерактивно после загрузки таблицы
			entry.MarkFull()
		case errors.Is(err, domain.ErrDuplicateBooking):
			result.AlreadyBooked++
			return true, nil
		default:
			return false, err
		}
	}
}
