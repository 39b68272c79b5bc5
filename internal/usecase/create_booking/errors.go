package create_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidName is returned when the customer name is too short.
	ErrInvalidName = errors.New("create_booking: invalid customer name")

	// ErrInvalidPhone is returned when the phone is not a Finnish number.
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrInvalidEmail is returned when the email does not look like one.
	ErrInvalidEmail = errors.New("create_booking: invalid email address")

	// ErrServiceNotFound is returned when the main service does not exist
	// or is inactive.
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotBookable is returned when the selected service cannot
	// anchor a booking.
	ErrServiceNotBookable = errors.New("create_booking: service cannot be booked on its own")

	// ErrAddOnNotAllowed is returned when a requested add-on is missing,
	// inactive or not combinable with the main service.
	ErrAddOnNotAllowed = errors.New("create_booking: add-on not allowed with this service")

	// ErrShopClosed is returned when the shop is closed on the date.
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidDate is returned when the booking date or time is in the
	// past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideOpeningHours is returned when the appointment does not fit
	// inside the day's opening hours.
	ErrOutsideOpeningHours = errors.New("create_booking: time is outside opening hours")

	// ErrSlotNotAvailable is returned when the requested time overlaps an
	// existing booking or a blocked period.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("create_booking: internal error")
)
