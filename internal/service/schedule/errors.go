package schedule

import "errors"

var (
	// ErrBlockNotFound is returned when the blocked period does not exist.
	ErrBlockNotFound = errors.New("blocked period not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrShopClosed is returned when the block falls on a closed day.
	ErrShopClosed = errors.New("shop is closed on the requested day")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("service: internal error")
)
