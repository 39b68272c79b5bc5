package resend

import "errors"

var (
	// ErrInternal is returned on request construction failures.
	ErrInternal = errors.New("resend client: internal error")

	// ErrNetwork is returned when the request never got a response:
	// DNS failures, connection refusals, timeouts.
	ErrNetwork = errors.New("resend client: network error")

	// ErrServer is returned on a 5xx from the Resend API.
	ErrServer = errors.New("resend client: server error")

	// ErrInvalidResponse is returned on a non-success status or an
	// unparseable body.
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
