package get_week_slots

import (
	"time"

	"github.com/kparturi/shop-backend/pkg/types"
)

// Request asks for the bookable slots of the week containing Date, for
// a main service plus optional add-ons.
type Request struct {
	Date      time.Time // any day inside the target week
	ServiceID int64
	AddOnIDs  []int64
}

// Response holds one entry per day, Monday through Sunday.
type Response struct {
	WeekStart            time.Time
	TotalDurationMinutes int
	Days                 []DaySlots
}

// DaySlots lists the free start times of a single day. A closed day has
// IsOpen false and no slots.
type DaySlots struct {
	Date   time.Time
	IsOpen bool
	Slots  []types.TimeString
}
