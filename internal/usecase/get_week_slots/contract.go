package get_week_slots

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
)

// BookingRepository reads bookings that may occupy slots.
type BookingRepository interface {
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
