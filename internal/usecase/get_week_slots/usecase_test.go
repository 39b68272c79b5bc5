package get_week_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.err
}

type fakeAvailabilityRepo struct {
	blocks []*domain.AvailabilityBlock
	err    error
}

func (f *fakeAvailabilityRepo) GetBookedByDateRange(_ context.Context, _, _ time.Time) ([]*domain.AvailabilityBlock, error) {
	return f.blocks, f.err
}

type fakeServiceRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	return f.services, f.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testHaircut = &domain.Service{ID: 1, Name: "Hiustenleikkaus", Price: 25, DurationMinutes: 30, IsActive: true, AddOnType: domain.AddOnTypeHair}
	testBeard   = &domain.Service{ID: 2, Name: "Parran muotoilu", Price: 15, DurationMinutes: 15, IsActive: true, AddOnType: domain.AddOnTypeBeard}
	testWash    = &domain.Service{ID: 3, Name: "Hiustenpesu", Price: 10, DurationMinutes: 15, IsActive: true, AddOnType: domain.AddOnTypeGeneral}
)

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeAvailabilityRepo, services *fakeServiceRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, blocks, services, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecuteWeekShape(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{},
		&fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard, testWash}},
		now,
	)

	// Thursday inside the target week.
	resp, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ServiceID: testHaircut.ID,
		AddOnIDs:  []int64{testBeard.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), resp.WeekStart, "normalized to Monday")
	assert.Equal(t, 45, resp.TotalDurationMinutes)
	require.Len(t, resp.Days, 7)

	assert.True(t, resp.Days[0].IsOpen, "Monday")
	assert.True(t, resp.Days[5].IsOpen, "Saturday")
	assert.False(t, resp.Days[6].IsOpen, "Sunday")
	assert.Empty(t, resp.Days[6].Slots)

	// Saturday closes at 17:00, so the last 45-minute slot starts 16:15.
	saturday := resp.Days[5].Slots
	require.NotEmpty(t, saturday)
	assert.Equal(t, "16:15", saturday[len(saturday)-1].String())
}

func TestExecuteQueriesActiveBookingsForWholeWeek(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(
		bookingRepo,
		&fakeAvailabilityRepo{},
		&fakeServiceRepo{services: []*domain.Service{testHaircut}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ServiceID: testHaircut.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, bookingRepo.filter.StartDate)
	require.NotNil(t, bookingRepo.filter.EndDate)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), *bookingRepo.filter.StartDate)
	assert.Equal(t, time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), *bookingRepo.filter.EndDate)
	assert.Equal(t, domain.ActiveStatuses, bookingRepo.filter.Statuses)
}

func TestExecuteSelectionErrors(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("unknown service", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: 99})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("general add-on cannot be the main service", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{},
			&fakeServiceRepo{services: []*domain.Service{testWash}}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: testWash.ID})
		assert.ErrorIs(t, err, ErrServiceNotBookable)
	})

	t.Run("kid main rejects beard add-on", func(t *testing.T) {
		kid := &domain.Service{ID: 7, DurationMinutes: 30, IsActive: true, AddOnType: domain.AddOnTypeKid}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{},
			&fakeServiceRepo{services: []*domain.Service{kid, testBeard}}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: kid.ID, AddOnIDs: []int64{testBeard.ID}})
		assert.ErrorIs(t, err, ErrAddOnNotAllowed)
	})

	t.Run("two beard add-ons conflict", func(t *testing.T) {
		beard2 := &domain.Service{ID: 8, DurationMinutes: 20, IsActive: true, AddOnType: domain.AddOnTypeBeard}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{},
			&fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard, beard2}}, now)
		_, err := uc.Execute(context.Background(), &Request{
			Date: date, ServiceID: testHaircut.ID, AddOnIDs: []int64{testBeard.ID, beard2.ID},
		})
		assert.ErrorIs(t, err, ErrAddOnNotAllowed)
	})
}

func TestExecuteFetchFailureFailsWholeWeek(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	boom := errors.New("connection refused")

	t.Run("bookings fetch", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{err: boom}, &fakeAvailabilityRepo{},
			&fakeServiceRepo{services: []*domain.Service{testHaircut}}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: testHaircut.ID})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("blocks fetch", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{err: boom},
			&fakeServiceRepo{services: []*domain.Service{testHaircut}}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: testHaircut.ID})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
