package create_booking

import (
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	createBooking "github.com/kparturi/shop-backend/internal/usecase/create_booking"
	"github.com/kparturi/shop-backend/pkg/types"
)

// CreateBookingRequest HTTP request model.
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	Notes         *string `json:"notes,omitempty"`
	Date          string  `json:"date"`      // "2026-09-07"
	StartTime     string  `json:"startTime"` // "10:00"
	ServiceID     int64   `json:"serviceId"`
	AddOnIDs      []int64 `json:"addOnIds,omitempty"`
}

// ServiceLine HTTP model for one booked service.
type ServiceLine struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse HTTP response model.
type BookingResponse struct {
	ID                   int64         `json:"id"`
	Status               string        `json:"status"`
	Date                 string        `json:"date"`
	StartTime            string        `json:"startTime"`
	EndTime              string        `json:"endTime"`
	TotalDurationMinutes int           `json:"totalDurationMinutes"`
	TotalPrice           float64       `json:"totalPrice"`
	Services             []ServiceLine `json:"services"`
	CreatedAt            string        `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
		Date:          date,
		StartTime:     startTime,
		ServiceID:     r.ServiceID,
		AddOnIDs:      r.AddOnIDs,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]ServiceLine, 0, len(resp.Services))
	for _, line := range resp.Services {
		services = append(services, ServiceLine{
			ID:              line.ID,
			Name:            line.Name,
			Price:           line.Price,
			DurationMinutes: line.DurationMinutes,
		})
	}

	return &BookingResponse{
		ID:                   resp.ID,
		Status:               resp.Status,
		Date:                 resp.Date.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		EndTime:              resp.EndTime.String(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		Services:             services,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
