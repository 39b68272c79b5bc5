package schedule

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
)

// AvailabilityRepository is the blocked-periods storage surface.
type AvailabilityRepository interface {
	Create(ctx context.Context, block *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id int64) error
	GetBookedByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AvailabilityBlock, error)
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
