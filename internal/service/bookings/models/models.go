package models

import (
	"errors"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
)

var (
	// ErrInvalidStatus is returned for a status outside the lifecycle set.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest cancels a booking on behalf of the shop.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest moves a booking to a new lifecycle status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListByDateRequest fetches the schedule for a single day.
type ListByDateRequest struct {
	Date            time.Time
	IncludeInactive bool // include cancelled and completed bookings
}

// Response models

// ServiceLine is one service attached to a booking. Position 0 is the
// main service.
type ServiceLine struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse carries a booking with its denormalized service lines.
type BookingResponse struct {
	ID                   int64         `json:"id"`
	CustomerName         string        `json:"customerName"`
	CustomerPhone        string        `json:"customerPhone"`
	CustomerEmail        string        `json:"customerEmail"`
	BookingDate          string        `json:"bookingDate"` // "2026-09-07"
	StartTime            string        `json:"startTime"`   // "10:00"
	EndTime              *string       `json:"endTime,omitempty"`
	TotalDurationMinutes *int          `json:"totalDurationMinutes,omitempty"`
	Status               string        `json:"status"`
	Notes                *string       `json:"notes,omitempty"`
	Services             []ServiceLine `json:"services"`
	TotalPrice           float64       `json:"totalPrice"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse carries the bookings for one day.
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts the domain model with its service lines.
func FromDomainBooking(b *domain.Booking, services []*domain.Service) *BookingResponse {
	if b == nil {
		return nil
	}

	lines := make([]ServiceLine, 0, len(services))
	var totalPrice float64
	for _, svc := range services {
		lines = append(lines, ServiceLine{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
		totalPrice += svc.Price
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		CustomerName:         b.CustomerName,
		CustomerPhone:        b.CustomerPhone,
		CustomerEmail:        b.CustomerEmail,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		StartTime:            b.BookingTime.String(),
		TotalDurationMinutes: b.TotalDurationMinutes,
		Status:               string(b.Status),
		Notes:                b.Notes,
		Services:             lines,
		TotalPrice:           totalPrice,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.EndAtTime != nil {
		endStr := b.EndAtTime.String()
		resp.EndTime = &endStr
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
