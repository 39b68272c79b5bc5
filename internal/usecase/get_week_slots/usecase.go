package get_week_slots

import (
	"context"
	"fmt"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/pkg/types"
)

// UseCase computes the bookable slots for a whole week at once. One
// database round trip per table covers all seven days; any fetch error
// fails the whole request instead of returning a partially free-looking
// week.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekSlots: date=%s, service=%d, addOns=%v",
		req.Date.Format(domain.DateFormat), req.ServiceID, req.AddOnIDs)

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the selection against the catalog.
	ids := append([]int64{req.ServiceID}, req.AddOnIDs...)
	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetWeekSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	main, addOns, err := resolveSelection(req, services)
	if err != nil {
		uc.logger.Warn("GetWeekSlots: selection rejected: %v", err)
		return nil, err
	}

	totalDuration := main.DurationMinutes
	for _, addOn := range addOns {
		totalDuration += addOn.DurationMinutes
	}

	// 3. Normalize to the Monday of the requested week.
	start := weekStart(req.Date)
	end := start.AddDate(0, 0, domain.DaysPerWeek-1)

	// 4. Fetch everything that occupies time in that week.
	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		StartDate: &start,
		EndDate:   &end,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetWeekSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.availabilityRepo.GetBookedByDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetWeekSlots: failed to get availability blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability blocks: %v", ErrInternal, err)
	}

	// 5. Generate per-day slots.
	now := uc.timeProvider.Now()
	days := make([]DaySlots, 0, domain.DaysPerWeek)

	for i := 0; i < domain.DaysPerWeek; i++ {
		date := start.AddDate(0, 0, i)

		window, open := domain.HoursForDay(date)
		day := DaySlots{Date: date, IsOpen: open, Slots: []types.TimeString{}}

		if open {
			busy := busyIntervalsForDay(date, bookings, blocks)
			day.Slots = generateDaySlots(date, window, totalDuration, busy, now)
		}

		days = append(days, day)
	}

	uc.logger.Info("GetWeekSlots: week=%s, duration=%d min, days=%d",
		start.Format(domain.DateFormat), totalDuration, len(days))

	return &Response{
		WeekStart:            start,
		TotalDurationMinutes: totalDuration,
		Days:                 days,
	}, nil
}
