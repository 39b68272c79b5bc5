package lookup_stampcard

// Request looks up a stamp card by email or referral code. ClientID
// identifies the caller's device for the verified-identifier cache.
type Request struct {
	ClientID   string
	Identifier string
}

// CardView is the customer-facing card projection.
type CardView struct {
	ID            int64
	Name          *string
	ReferralCode  string
	StampCount    int
	ReferralCount int
	MaxStamps     int
	IsFull        bool
}

// Response either returns the card outright (recently verified client)
// or challenges the caller to verify the card's email. MaskedEmail is
// only set on a challenge.
type Response struct {
	Card                 *CardView
	VerificationRequired bool
	MaskedEmail          string
}
