package domain

import (
	"time"

	"github.com/kparturi/shop-backend/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking is a persisted appointment. EndAtTime and TotalDurationMinutes
// are denormalized at creation time (main service plus add-ons) so slot
// computation never needs the joined services. Older rows may miss either
// field, which the slot generator tolerates.
type Booking struct {
	ID                   int64
	CustomerName         string
	CustomerPhone        string
	CustomerEmail        string
	BookingDate          time.Time
	BookingTime          types.TimeString
	EndAtTime            *types.TimeString
	TotalDurationMinutes *int
	Notes                *string
	Status               BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its time slot.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled reports whether the booking may still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingService links a booking to one of its constituent services.
// Position 0 is the main service; add-ons follow in selection order.
type BookingService struct {
	BookingID int64
	ServiceID int64
	Position  int
}

// BookingsFilter narrows booking queries.
type BookingsFilter struct {
	StartDate *time.Time      // inclusive; nil = unbounded
	EndDate   *time.Time      // inclusive; nil = unbounded
	Statuses  []BookingStatus // nil = any status
}
