package create_booking

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
)

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateServices(ctx context.Context, services []domain.BookingService) error
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository reads manual availability blocks.
type AvailabilityRepository interface {
	GetBookedByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AvailabilityBlock, error)
}

// ServiceRepository reads the services catalog.
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// EmailSender delivers the confirmation and owner error-report emails.
type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, to string, data resend.BookingEmailData) error
	SendErrorReport(ctx context.Context, to string, report resend.ErrorReportData) error
}

// TransactionManager wraps the availability check and inserts in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging dependency of this usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
