package domain

import "time"

// Slot generation constants.
const (
	// SlotStepMinutes is the spacing between candidate start times.
	SlotStepMinutes = 15

	// DaysPerWeek slots are always computed Monday through Sunday.
	DaysPerWeek = 7
)

// Verification and cache policy.
const (
	// VerificationCodeTTL is how long an emailed code stays valid.
	VerificationCodeTTL = 15 * time.Minute

	// IdentifierCacheTTL is how long a resolved identifier skips
	// re-verification.
	IdentifierCacheTTL = 24 * time.Hour

	// VerificationCodeLength is the number of digits in a code.
	VerificationCodeLength = 6
)

// Validation constants.
const (
	MinCustomerNameLength = 2
	MaxNotesLength        = 1000
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a time slot.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
