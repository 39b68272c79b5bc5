package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
	"github.com/kparturi/shop-backend/pkg/ptr"
)

const emailTimeout = 10 * time.Second

// UseCase creates a booking. The availability re-check and the inserts
// run in one serializable transaction so two concurrent submissions for
// the same time cannot both succeed.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	emailSender      EmailSender
	txManager        TransactionManager
	timeProvider     TimeProvider
	adminEmail       string
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	emailSender EmailSender,
	txManager TransactionManager,
	adminEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		emailSender:      emailSender,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		adminEmail:       adminEmail,
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%d, addOns=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceID, req.AddOnIDs)

	// 1. Validate customer details and request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the selection against the catalog.
	ids := append([]int64{req.ServiceID}, req.AddOnIDs...)
	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	main, addOns, err := resolveSelection(req, services)
	if err != nil {
		uc.logger.Warn("CreateBooking: selection rejected: %v", err)
		return nil, err
	}

	ordered := append([]*domain.Service{main}, addOns...)
	totalDuration := 0
	totalPrice := 0.0
	for _, svc := range ordered {
		totalDuration += svc.DurationMinutes
		totalPrice += svc.Price
	}

	// 3. Check the timing against opening hours and the clock.
	now := uc.timeProvider.Now()
	endTime, err := validateTiming(req.Date, req.StartTime, totalDuration, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: timing rejected: %v", err)
		return nil, err
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMinutes := startMinutes + totalDuration

	// 4. Re-check availability and insert, atomically.
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load everything occupying the date, locked for the tx.
		bookings, err := uc.bookingRepo.GetByDateRange(txCtx, domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		blocks, err := uc.availabilityRepo.GetBookedByDateRange(txCtx, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability blocks: %v", err)
			return fmt.Errorf("%w: failed to get availability blocks: %w", ErrInternal, err)
		}

		// 4.2. The slot the customer saw may be gone by now.
		if hasConflict(req.Date, startMinutes, endMinutes, bookings, blocks) {
			uc.logger.Warn("CreateBooking: slot %s already taken", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 4.3. Insert the booking as pending; staff confirm it later.
		booking := &domain.Booking{
			CustomerName:         strings.TrimSpace(req.CustomerName),
			CustomerPhone:        strings.TrimSpace(req.CustomerPhone),
			CustomerEmail:        strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
			BookingDate:          req.Date,
			BookingTime:          req.StartTime,
			EndAtTime:            ptr.Ptr(endTime),
			TotalDurationMinutes: ptr.Ptr(totalDuration),
			Notes:                req.Notes,
			Status:               domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 4.4. Attach the services, main first.
		rows := make([]domain.BookingService, len(ordered))
		for i, svc := range ordered {
			rows[i] = domain.BookingService{BookingID: created.ID, ServiceID: svc.ID, Position: i}
		}
		if err := uc.bookingRepo.CreateServices(txCtx, rows); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking services: %v", err)
			return fmt.Errorf("%w: failed to create booking services: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.reportFailure(err, req)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d", result.ID)

	// 5. Confirmation email is fire-and-forget: the booking stands even
	// if the email never leaves.
	go uc.sendConfirmation(result, ordered, totalPrice)

	lines := make([]ServiceLine, len(ordered))
	for i, svc := range ordered {
		lines[i] = ServiceLine{ID: svc.ID, Name: svc.Name, Price: svc.Price, DurationMinutes: svc.DurationMinutes}
	}

	return &Response{
		ID:                   result.ID,
		Status:               string(result.Status),
		Date:                 result.BookingDate,
		StartTime:            result.BookingTime,
		EndTime:              endTime,
		TotalDurationMinutes: totalDuration,
		TotalPrice:           totalPrice,
		Services:             lines,
		CreatedAt:            result.CreatedAt,
	}, nil
}

// reportFailure emails the owner about server-side submission failures.
// Business rejections and network trouble are not reported.
func (uc *UseCase) reportFailure(err error, req *Request) {
	if !errors.Is(err, ErrInternal) {
		return
	}
	if classifyFailure(err) != classServer {
		uc.logger.Warn("CreateBooking: network-class failure, skipping owner report: %v", err)
		return
	}
	if uc.adminEmail == "" {
		return
	}

	report := faultReport("create_booking", req.CustomerEmail, err)
	report.OccurredAt = uc.timeProvider.Now()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
		defer cancel()

		if sendErr := uc.emailSender.SendErrorReport(ctx, uc.adminEmail, report); sendErr != nil {
			uc.logger.Warn("CreateBooking: failed to send owner error report: %v", sendErr)
		}
	}()
}

func (uc *UseCase) sendConfirmation(booking *domain.Booking, services []*domain.Service, totalPrice float64) {
	ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
	defer cancel()

	lines := make([]resend.EmailServiceLine, len(services))
	for i, svc := range services {
		lines[i] = resend.EmailServiceLine{Name: svc.Name, Price: svc.Price}
	}

	duration := 0
	if booking.TotalDurationMinutes != nil {
		duration = *booking.TotalDurationMinutes
	}

	data := resend.BookingEmailData{
		CustomerName:         booking.CustomerName,
		Date:                 booking.BookingDate,
		Time:                 booking.BookingTime.String(),
		Services:             lines,
		TotalPrice:           totalPrice,
		TotalDurationMinutes: duration,
	}

	if err := uc.emailSender.SendBookingConfirmation(ctx, booking.CustomerEmail, data); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email failed for booking id=%d: %v", booking.ID, err)
	}
}
