package bookings

import (
	"context"

	"github.com/kparturi/shop-backend/internal/domain"
)

// BookingRepository is the bookings storage surface the admin service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetServiceIDs(ctx context.Context, bookingID int64) ([]int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ServiceRepository resolves service lines for bookings. Lookups must not
// filter on is_active: old bookings reference retired services.
type ServiceRepository interface {
	GetAllByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
