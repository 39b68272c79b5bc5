package get_week_slots

import (
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/pkg/types"
)

// busyInterval is an occupied time range in minutes from midnight,
// half-open: [start, end).
type busyInterval struct {
	start int
	end   int
}

// weekStart returns the Monday of the week containing date, at midnight
// in date's location.
func weekStart(date time.Time) time.Time {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(dateOnly.Weekday()) + 6) % 7 // Monday = 0
	return dateOnly.AddDate(0, 0, -offset)
}

// bookingInterval converts a booking to its busy interval. The end comes
// from the stored end time when present, else from the stored total
// duration. A booking with neither cannot be placed on the timeline and
// is skipped rather than guessed at.
func bookingInterval(b *domain.Booking) (busyInterval, bool) {
	start, err := b.BookingTime.Minutes()
	if err != nil {
		return busyInterval{}, false
	}

	if b.EndAtTime != nil {
		end, err := b.EndAtTime.Minutes()
		if err != nil {
			return busyInterval{}, false
		}
		return busyInterval{start: start, end: end}, true
	}

	if b.TotalDurationMinutes != nil {
		return busyInterval{start: start, end: start + *b.TotalDurationMinutes}, true
	}

	return busyInterval{}, false
}

func blockInterval(block *domain.AvailabilityBlock) (busyInterval, bool) {
	start, err := block.StartTime.Minutes()
	if err != nil {
		return busyInterval{}, false
	}
	end, err := block.EndTime.Minutes()
	if err != nil {
		return busyInterval{}, false
	}
	return busyInterval{start: start, end: end}, true
}

// busyIntervalsForDay collects the occupied intervals of a single day
// from active bookings and booked-out blocks.
func busyIntervalsForDay(date time.Time, bookings []*domain.Booking, blocks []*domain.AvailabilityBlock) []busyInterval {
	intervals := make([]busyInterval, 0)

	for _, b := range bookings {
		if !b.IsActive() || !isSameDay(b.BookingDate, date) {
			continue
		}
		if iv, ok := bookingInterval(b); ok {
			intervals = append(intervals, iv)
		}
	}

	for _, block := range blocks {
		if !block.IsBooked || !isSameDay(block.Date, date) {
			continue
		}
		if iv, ok := blockInterval(block); ok {
			intervals = append(intervals, iv)
		}
	}

	return intervals
}

// generateDaySlots produces the free start times of one day. Candidates
// run from opening in fixed steps; a candidate survives if the whole
// appointment fits before closing, does not start in the past, and does
// not overlap any busy interval. Interval comparison is half-open, so
// back-to-back appointments are fine.
func generateDaySlots(
	date time.Time,
	window domain.DayWindow,
	durationMinutes int,
	busy []busyInterval,
	now time.Time,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return slots
	}
	closeMinutes, err := window.Close.Minutes()
	if err != nil {
		return slots
	}

	if isDateInPast(date, now) {
		return slots
	}

	nowMinutes := -1
	if isSameDay(date, now) {
		nowMinutes = now.Hour()*60 + now.Minute()
	}

	for start := openMinutes; start < closeMinutes; start += domain.SlotStepMinutes {
		end := start + durationMinutes
		if end > closeMinutes {
			break
		}
		if start <= nowMinutes {
			continue
		}

		free := true
		for _, iv := range busy {
			if start < iv.end && end > iv.start {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, types.NewTimeStringFromMinutes(start))
		}
	}

	return slots
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
