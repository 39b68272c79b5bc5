package create_booking

import (
	"time"

	"github.com/kparturi/shop-backend/pkg/types"
)

// Request carries a complete booking submission.
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         *string

	Date      time.Time        // booking date, no time component
	StartTime types.TimeString // appointment start, e.g. "10:00"

	ServiceID int64   // main service
	AddOnIDs  []int64 // optional add-ons, in selection order
}

// ServiceLine describes one service of the created booking.
type ServiceLine struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Response is the created booking.
type Response struct {
	ID                   int64
	Status               string
	Date                 time.Time
	StartTime            types.TimeString
	EndTime              types.TimeString
	TotalDurationMinutes int
	TotalPrice           float64
	Services             []ServiceLine // main service first
	CreatedAt            time.Time
}
