package get_week_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the main service does not exist
	// or is inactive.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable is returned when the selected service cannot
	// anchor a booking.
	ErrServiceNotBookable = errors.New("service cannot be booked on its own")

	// ErrAddOnNotAllowed is returned when a requested add-on is missing,
	// inactive or not combinable with the main service.
	ErrAddOnNotAllowed = errors.New("add-on not allowed with this service")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
