package list_bookings

import (
	"context"

	"github.com/kparturi/shop-backend/internal/service/bookings/models"
)

type BookingService interface {
	ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
