package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is already cancelled
	// or completed.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned for a status outside the lifecycle set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("service: internal error")
)
