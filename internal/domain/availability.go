package domain

import (
	"time"

	"github.com/kparturi/shop-backend/pkg/types"
)

// AvailabilityBlock marks the staff resource unavailable for an explicit
// date and time range, independent of any customer booking. Only blocks
// with IsBooked set count against slot computation.
type AvailabilityBlock struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
	Reason    *string
	CreatedAt time.Time
}
