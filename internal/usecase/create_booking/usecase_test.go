package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
	"github.com/kparturi/shop-backend/pkg/ptr"
	"github.com/kparturi/shop-backend/pkg/types"
)

type fakeBookingRepo struct {
	existing   []*domain.Booking
	created    *domain.Booking
	services   []domain.BookingService
	createErr  error
	fetchErr   error
	nextID     int64
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.nextID == 0 {
		f.nextID = 1
	}
	b.ID = f.nextID
	b.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) CreateServices(_ context.Context, services []domain.BookingService) error {
	f.services = services
	return nil
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.existing, f.fetchErr
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

type fakeEmailSender struct {
	confirmations chan resend.BookingEmailData
	reports       chan resend.ErrorReportData
	confirmErr    error
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{
		confirmations: make(chan resend.BookingEmailData, 1),
		reports:       make(chan resend.ErrorReportData, 1),
	}
}

func (f *fakeEmailSender) SendBookingConfirmation(_ context.Context, _ string, data resend.BookingEmailData) error {
	f.confirmations <- data
	return f.confirmErr
}

func (f *fakeEmailSender) SendErrorReport(_ context.Context, _ string, report resend.ErrorReportData) error {
	f.reports <- report
	return nil
}

type directTxManager struct{}

func (directTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
)

func validRequest(t *testing.T) *Request {
	t.Helper()
	start, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)
	return &Request{
		CustomerName:  "Matti Meikäläinen",
		CustomerPhone: "+358401234567",
		CustomerEmail: "Matti@Example.com",
		// 2026-09-07 is a Monday.
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		ServiceID: testHaircut.ID,
		AddOnIDs:  []int64{testBeard.ID},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeAvailabilityRepo, services *fakeServiceRepo, emails *fakeEmailSender) *UseCase {
	uc := NewUseCase(bookings, blocks, services, emails, directTxManager{}, "owner@example.com", nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func waitConfirmation(t *testing.T, emails *fakeEmailSender) resend.BookingEmailData {
	t.Helper()
	select {
	case data := <-emails.confirmations:
		return data
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never sent")
		return resend.BookingEmailData{}
	}
}

func TestExecuteCreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	emails := newFakeEmailSender()
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}, emails)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "10:45", resp.EndTime.String())
	assert.Equal(t, 45, resp.TotalDurationMinutes)
	assert.InDelta(t, 40.0, resp.TotalPrice, 0.001)

	require.NotNil(t, repo.created)
	assert.Equal(t, "matti@example.com", repo.created.CustomerEmail, "email stored lowercased")
	require.NotNil(t, repo.created.EndAtTime)
	assert.Equal(t, "10:45", repo.created.EndAtTime.String())

	require.Len(t, repo.services, 2)
	assert.Equal(t, domain.BookingService{BookingID: resp.ID, ServiceID: testHaircut.ID, Position: 0}, repo.services[0])
	assert.Equal(t, domain.BookingService{BookingID: resp.ID, ServiceID: testBeard.ID, Position: 1}, repo.services[1])

	data := waitConfirmation(t, emails)
	assert.Equal(t, "Matti Meikäläinen", data.CustomerName)
	require.Len(t, data.Services, 2)
	assert.Equal(t, "Hiustenleikkaus", data.Services[0].Name)
}

func TestExecuteCustomerValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, newFakeEmailSender())

	t.Run("short name", func(t *testing.T) {
		req := validRequest(t)
		req.CustomerName = " A "
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("foreign phone", func(t *testing.T) {
		req := validRequest(t)
		req.CustomerPhone = "+4912345678"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("phone with spaces is accepted", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		emails := newFakeEmailSender()
		ucOK := newTestUseCase(repo, &fakeAvailabilityRepo{}, &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}, emails)
		req := validRequest(t)
		req.CustomerPhone = "040 123 4567"
		_, err := ucOK.Execute(context.Background(), req)
		assert.NoError(t, err)
		waitConfirmation(t, emails)
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRequest(t)
		req.CustomerEmail = "not-an-email"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestExecuteTimingRules(t *testing.T) {
	services := &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}

	t.Run("sunday is closed", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, services, newFakeEmailSender())
		req := validRequest(t)
		req.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, services, newFakeEmailSender())
		req := validRequest(t)
		req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("appointment past closing rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, services, newFakeEmailSender())
		req := validRequest(t)
		start, _ := types.NewTimeStringFromString("17:30")
		req.StartTime = start // 45 minutes would end 18:15
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideOpeningHours)
	})
}

func TestExecuteConflictDetection(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	services := &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}

	t.Run("overlapping booking", func(t *testing.T) {
		start, _ := types.NewTimeStringFromString("10:30")
		repo := &fakeBookingRepo{existing: []*domain.Booking{{
			BookingDate:          date,
			BookingTime:          start,
			TotalDurationMinutes: ptr.Ptr(30),
			Status:               domain.StatusConfirmed,
		}}}
		uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, services, newFakeEmailSender())

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("blocked period", func(t *testing.T) {
		blockStart, _ := types.NewTimeStringFromString("10:00")
		blockEnd, _ := types.NewTimeStringFromString("12:00")
		blocks := &fakeAvailabilityRepo{blocks: []*domain.AvailabilityBlock{{
			Date: date, StartTime: blockStart, EndTime: blockEnd, IsBooked: true,
		}}}
		uc := newTestUseCase(&fakeBookingRepo{}, blocks, services, newFakeEmailSender())

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("touching booking does not conflict", func(t *testing.T) {
		start, _ := types.NewTimeStringFromString("10:45")
		repo := &fakeBookingRepo{existing: []*domain.Booking{{
			BookingDate:          date,
			BookingTime:          start,
			TotalDurationMinutes: ptr.Ptr(30),
			Status:               domain.StatusConfirmed,
		}}}
		emails := newFakeEmailSender()
		uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, services, emails)

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.NoError(t, err)
		waitConfirmation(t, emails)
	})
}

func TestExecuteFailureReporting(t *testing.T) {
	services := &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}

	t.Run("database fault emails the owner", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: &pq.Error{
			Code:    "23505",
			Message: "duplicate key value violates unique constraint",
			Detail:  "Key (id)=(1) already exists.",
		}}
		emails := newFakeEmailSender()
		uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, services, emails)

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrInternal)

		select {
		case report := <-emails.reports:
			assert.Equal(t, "create_booking", report.Operation)
			assert.Equal(t, "duplicate key value violates unique constraint", report.Message)
			assert.Equal(t, "Key (id)=(1) already exists.", report.Details)
		case <-time.After(time.Second):
			t.Fatal("owner error report was never sent")
		}
	})

	t.Run("network fault is not reported", func(t *testing.T) {
		repo := &fakeBookingRepo{fetchErr: context.DeadlineExceeded}
		emails := newFakeEmailSender()
		uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, services, emails)

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrInternal)

		select {
		case <-emails.reports:
			t.Fatal("network failures must not page the owner")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("business rejection is not reported", func(t *testing.T) {
		emails := newFakeEmailSender()
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, emails)

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.ErrorIs(t, err, ErrServiceNotFound)

		select {
		case <-emails.reports:
			t.Fatal("business rejections must not page the owner")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestExecuteConfirmationFailureIsNotFatal(t *testing.T) {
	repo := &fakeBookingRepo{}
	emails := newFakeEmailSender()
	emails.confirmErr = errors.New("resend is down")
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{}, &fakeServiceRepo{services: []*domain.Service{testHaircut, testBeard}}, emails)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	waitConfirmation(t, emails)
}
