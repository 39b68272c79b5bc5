package reminder

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
)

// BookingRepository is the storage surface of the reminder job.
type BookingRepository interface {
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetServiceIDs(ctx context.Context, bookingID int64) ([]int64, error)
}

// ServiceRepository resolves service lines for reminder emails.
type ServiceRepository interface {
	GetAllByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// EmailSender sends the next-day reminders.
type EmailSender interface {
	SendBookingReminder(ctx context.Context, to string, data resend.BookingEmailData) error
}

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging surface of the job.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
