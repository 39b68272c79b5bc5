package domain

import "time"

// MaxStamps is the number of stamps that fills a card.
const MaxStamps = 10

// StampCard is a loyalty record. Stamp and referral counts are mutated by
// shop staff, never by this service; the lookup flow only reads.
type StampCard struct {
	ID            int64
	Email         *string
	Name          *string
	ReferralCode  string
	StampCount    int
	ReferralCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsFull reports whether the card has collected all stamps.
func (c *StampCard) IsFull() bool {
	return c.StampCount >= MaxStamps
}

// StampCardRequestStatus is the review state of a new-card request.
type StampCardRequestStatus string

const (
	RequestStatusPending  StampCardRequestStatus = "pending"
	RequestStatusApproved StampCardRequestStatus = "approved"
	RequestStatusRejected StampCardRequestStatus = "rejected"
)

// StampCardRequest is a customer's application for a new stamp card,
// reviewed by staff out of band.
type StampCardRequest struct {
	ID        int64
	Name      string
	Email     string
	Status    StampCardRequestStatus
	CreatedAt time.Time
}

// VerificationCode is a short-lived, single-use proof of email control.
// At most one live code exists per (lowercased) email; issuing a new one
// overwrites the previous.
type VerificationCode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// IsExpired reports whether the code is past its expiry at the given time.
func (v *VerificationCode) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
