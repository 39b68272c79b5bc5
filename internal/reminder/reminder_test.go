package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
	"github.com/kparturi/shop-backend/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	serviceIDs map[int64][]int64
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetServiceIDs(_ context.Context, bookingID int64) ([]int64, error) {
	return f.serviceIDs[bookingID], nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetAllByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

type fakeEmailSender struct {
	sent    []resend.BookingEmailData
	to      []string
	failFor string
}

func (f *fakeEmailSender) SendBookingReminder(_ context.Context, to string, data resend.BookingEmailData) error {
	if to == f.failFor {
		return errors.New("smtp down")
	}
	f.to = append(f.to, to)
	f.sent = append(f.sent, data)
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestJob(t *testing.T, br *fakeBookingRepo, sender *fakeEmailSender) *Job {
	t.Helper()
	sr := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Hiustenleikkuu", Price: 25, DurationMinutes: 30},
		4: {ID: 4, Name: "Parran siistiminen", Price: 10, DurationMinutes: 15},
	}}
	job, err := NewJob(br, sr, sender, fixedTime{now: time.Date(2026, 9, 6, 18, 0, 0, 0, time.UTC)},
		nopLogger{}, 18, time.UTC)
	require.NoError(t, err)
	return job
}

func testBooking(id int64, email string) *domain.Booking {
	return &domain.Booking{
		ID:                   id,
		CustomerName:         "Matti",
		CustomerEmail:        email,
		BookingDate:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		BookingTime:          "10:00",
		TotalDurationMinutes: ptr.Ptr(45),
		Status:               domain.StatusConfirmed,
	}
}

func TestSendReminders(t *testing.T) {
	t.Run("emails every active booking for tomorrow", func(t *testing.T) {
		br := &fakeBookingRepo{
			bookings: []*domain.Booking{
				testBooking(1, "matti@example.com"),
				testBooking(2, "maija@example.com"),
			},
			serviceIDs: map[int64][]int64{1: {1, 4}, 2: {1}},
		}
		sender := &fakeEmailSender{}
		job := newTestJob(t, br, sender)

		require.NoError(t, job.SendReminders(context.Background()))

		assert.Equal(t, []string{"matti@example.com", "maija@example.com"}, sender.to)

		// the filter targets tomorrow only, active statuses only
		require.NotNil(t, br.lastFilter.StartDate)
		assert.Equal(t, "2026-09-07", br.lastFilter.StartDate.Format(domain.DateFormat))
		assert.Equal(t, br.lastFilter.StartDate, br.lastFilter.EndDate)
		assert.Equal(t, domain.ActiveStatuses, br.lastFilter.Statuses)

		// first reminder carries the full service breakdown
		first := sender.sent[0]
		assert.Equal(t, "10:00", first.Time)
		assert.Len(t, first.Services, 2)
		assert.InDelta(t, 35.0, first.TotalPrice, 0.001)
		assert.Equal(t, 45, first.TotalDurationMinutes)
	})

	t.Run("one failed email does not stop the sweep", func(t *testing.T) {
		br := &fakeBookingRepo{
			bookings: []*domain.Booking{
				testBooking(1, "down@example.com"),
				testBooking(2, "maija@example.com"),
			},
			serviceIDs: map[int64][]int64{1: {1}, 2: {1}},
		}
		sender := &fakeEmailSender{failFor: "down@example.com"}
		job := newTestJob(t, br, sender)

		require.NoError(t, job.SendReminders(context.Background()))
		assert.Equal(t, []string{"maija@example.com"}, sender.to)
	})

	t.Run("no bookings tomorrow sends nothing", func(t *testing.T) {
		br := &fakeBookingRepo{serviceIDs: map[int64][]int64{}}
		sender := &fakeEmailSender{}
		job := newTestJob(t, br, sender)

		require.NoError(t, job.SendReminders(context.Background()))
		assert.Empty(t, sender.to)
	})
}

func TestNewJobRejectsBadHour(t *testing.T) {
	br := &fakeBookingRepo{}
	sr := &fakeServiceRepo{}
	_, err := NewJob(br, sr, &fakeEmailSender{}, RealTimeProvider{}, nopLogger{}, 99, time.UTC)
	assert.Error(t, err)
}
