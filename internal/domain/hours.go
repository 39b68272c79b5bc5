package domain

import (
	"time"

	"github.com/kparturi/shop-backend/pkg/types"
)

// DayWindow is the open..close interval of one weekday.
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// operatingHours is the shop schedule: Mon-Fri 10-18, Sat 10-17, Sun
// closed. A single fixed location, so this is a compile-time table; move
// it into configuration if a second shop ever appears.
var operatingHours = map[time.Weekday]DayWindow{
	time.Monday:    {Open: "10:00", Close: "18:00"},
	time.Tuesday:   {Open: "10:00", Close: "18:00"},
	time.Wednesday: {Open: "10:00", Close: "18:00"},
	time.Thursday:  {Open: "10:00", Close: "18:00"},
	time.Friday:    {Open: "10:00", Close: "18:00"},
	time.Saturday:  {Open: "10:00", Close: "17:00"},
}

// HoursForDay returns the operating window for the date's weekday.
// ok is false on closed days (Sunday).
func HoursForDay(date time.Time) (window DayWindow, ok bool) {
	window, ok = operatingHours[date.Weekday()]
	return window, ok
}
