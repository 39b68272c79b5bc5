package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
)

// runTimeout bounds a single reminder sweep.
const runTimeout = 5 * time.Minute

// Job sends every customer with an active booking tomorrow one reminder
// email, once a day at the configured hour.
type Job struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	emailSender  EmailSender
	timeProvider TimeProvider
	logger       Logger

	cron *cron.Cron
}

// NewJob creates the reminder job. hour is the local hour of day to run
// at, location the shop's timezone.
func NewJob(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	emailSender EmailSender,
	timeProvider TimeProvider,
	logger Logger,
	hour int,
	location *time.Location,
) (*Job, error) {
	j := &Job{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		emailSender:  emailSender,
		timeProvider: timeProvider,
		logger:       logger,
		cron:         cron.New(cron.WithLocation(location)),
	}

	spec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("reminder: schedule %q: %w", spec, err)
	}

	return j, nil
}

// Start launches the scheduler in its own goroutine.
func (j *Job) Start() {
	j.cron.Start()
	j.logger.Info("Reminder scheduler started")
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Reminder scheduler stopped")
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := j.SendReminders(ctx); err != nil {
		j.logger.Error("Reminder sweep failed: %v", err)
	}
}

// SendReminders emails everyone with an active booking tomorrow. One
// failed email does not stop the sweep.
func (j *Job) SendReminders(ctx context.Context) error {
	now := j.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	j.logger.Info("Reminder sweep started for %s", tomorrow.Format(domain.DateFormat))

	bookings, err := j.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{
		StartDate: &tomorrow,
		EndDate:   &tomorrow,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		return fmt.Errorf("reminder: fetch bookings: %w", err)
	}

	sent := 0
	for _, booking := range bookings {
		if err := j.remind(ctx, booking); err != nil {
			j.logger.Warn("Reminder not sent for booking id=%d: %v", booking.ID, err)
			continue
		}
		sent++
	}

	j.logger.Info("Reminder sweep finished: %d/%d sent for %s",
		sent, len(bookings), tomorrow.Format(domain.DateFormat))
	return nil
}

func (j *Job) remind(ctx context.Context, booking *domain.Booking) error {
	ids, err := j.bookingRepo.GetServiceIDs(ctx, booking.ID)
	if err != nil {
		return fmt.Errorf("get service ids: %w", err)
	}

	services, err := j.serviceRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve services: %w", err)
	}

	lines := make([]resend.EmailServiceLine, 0, len(services))
	var totalPrice float64
	for _, svc := range services {
		lines = append(lines, resend.EmailServiceLine{Name: svc.Name, Price: svc.Price})
		totalPrice += svc.Price
	}

	var duration int
	if booking.TotalDurationMinutes != nil {
		duration = *booking.TotalDurationMinutes
	}

	return j.emailSender.SendBookingReminder(ctx, booking.CustomerEmail, resend.BookingEmailData{
		CustomerName:         booking.CustomerName,
		Date:                 booking.BookingDate,
		Time:                 booking.BookingTime.String(),
		Services:             lines,
		TotalPrice:           totalPrice,
		TotalDurationMinutes: duration,
	})
}
