package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/pkg/types"
)

var (
	// Finnish numbers: +358 or a leading 0, then 8-9 digits.
	phonePattern = regexp.MustCompile(`^(\+358|0)[0-9]{8,9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validateRequest(req *Request) error {
	if len(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, domain.MinCustomerNameLength)
	}

	phone := strings.NewReplacer(" ", "", "-", "").Replace(req.CustomerPhone)
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, req.CustomerPhone)
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.CustomerEmail)) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.CustomerEmail)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.AddOnIDs))
	for _, id := range req.AddOnIDs {
		if id <= 0 {
			return fmt.Errorf("%w: addOnID must be positive", ErrInvalidInput)
		}
		if id == req.ServiceID {
			return fmt.Errorf("%w: addOnID equals serviceID", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate addOnID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// resolveSelection maps the requested ids onto catalog services and
// enforces the combination rules.
func resolveSelection(req *Request, services []*domain.Service) (*domain.Service, []*domain.Service, error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	main, ok := byID[req.ServiceID]
	if !ok {
		return nil, nil, ErrServiceNotFound
	}
	if !main.IsMainSelectable() {
		return nil, nil, ErrServiceNotBookable
	}

	offerable := make(map[int64]struct{})
	for _, svc := range domain.OfferableAddOns(main, services) {
		offerable[svc.ID] = struct{}{}
	}

	addOns := make([]*domain.Service, 0, len(req.AddOnIDs))
	typeTaken := make(map[domain.AddOnType]struct{})
	for _, id := range req.AddOnIDs {
		svc, ok := byID[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: id=%d", ErrAddOnNotAllowed, id)
		}
		if _, ok := offerable[id]; !ok {
			return nil, nil, fmt.Errorf("%w: id=%d", ErrAddOnNotAllowed, id)
		}
		if svc.AddOnType == domain.AddOnTypeHair || svc.AddOnType == domain.AddOnTypeBeard {
			if _, taken := typeTaken[svc.AddOnType]; taken {
				return nil, nil, fmt.Errorf("%w: id=%d conflicts with another add-on", ErrAddOnNotAllowed, id)
			}
			typeTaken[svc.AddOnType] = struct{}{}
		}
		addOns = append(addOns, svc)
	}

	return main, addOns, nil
}

// validateTiming checks that the appointment lies in the future and fits
// inside the day's opening hours.
func validateTiming(date time.Time, start types.TimeString, durationMinutes int, now time.Time) (types.TimeString, error) {
	if isDateInPast(date, now) {
		return "", ErrInvalidDate
	}

	window, open := domain.HoursForDay(date)
	if !open {
		return "", ErrShopClosed
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if isSameDay(date, now) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if startMinutes <= nowMinutes {
			return "", fmt.Errorf("%w: time already passed", ErrInvalidDate)
		}
	}

	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeMinutes, err := window.Close.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	endMinutes := startMinutes + durationMinutes
	if startMinutes < openMinutes || endMinutes > closeMinutes {
		return "", ErrOutsideOpeningHours
	}

	return types.NewTimeStringFromMinutes(endMinutes), nil
}

// hasConflict reports whether [start, end) overlaps any active booking
// or booked-out block on the date. Intervals are half-open, touching
// appointments do not conflict.
func hasConflict(
	date time.Time,
	startMinutes, endMinutes int,
	bookings []*domain.Booking,
	blocks []*domain.AvailabilityBlock,
) bool {
	for _, b := range bookings {
		if !b.IsActive() || !isSameDay(b.BookingDate, date) {
			continue
		}

		bStart, err := b.BookingTime.Minutes()
		if err != nil {
			continue
		}

		var bEnd int
		switch {
		case b.EndAtTime != nil:
			end, err := b.EndAtTime.Minutes()
			if err != nil {
				continue
			}
			bEnd = end
		case b.TotalDurationMinutes != nil:
			bEnd = bStart + *b.TotalDurationMinutes
		default:
			continue
		}

		if bStart < endMinutes && bEnd > startMinutes {
			return true
		}
	}

	for _, block := range blocks {
		if !block.IsBooked || !isSameDay(block.Date, date) {
			continue
		}
		blockStart, err := block.StartTime.Minutes()
		if err != nil {
			continue
		}
		blockEnd, err := block.EndTime.Minutes()
		if err != nil {
			continue
		}
		if blockStart < endMinutes && blockEnd > startMinutes {
			return true
		}
	}

	return false
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
