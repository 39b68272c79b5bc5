package lookup_stampcard

import (
	lookupStampcard "github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
)

// LookupRequest HTTP request model.
type LookupRequest struct {
	ClientID   string `json:"clientId"`
	Identifier string `json:"identifier"` // email or referral code
}

// CardResponse HTTP model for a stamp card.
type CardResponse struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name,omitempty"`
	ReferralCode  string  `json:"referralCode"`
	StampCount    int     `json:"stampCount"`
	ReferralCount int     `json:"referralCount"`
	MaxStamps     int     `json:"maxStamps"`
	IsFull        bool    `json:"isFull"`
}

// LookupResponse HTTP response model. Either Card is set, or the caller
// is challenged to verify the masked email.
type LookupResponse struct {
	Card                 *CardResponse `json:"card,omitempty"`
	VerificationRequired bool          `json:"verificationRequired"`
	MaskedEmail          string        `json:"maskedEmail,omitempty"`
}

// FromCardView converts the use case card projection.
func FromCardView(card *lookupStampcard.CardView) *CardResponse {
	if card == nil {
		return nil
	}
	return &CardResponse{
		ID:            card.ID,
		Name:          card.Name,
		ReferralCode:  card.ReferralCode,
		StampCount:    card.StampCount,
		ReferralCount: card.ReferralCount,
		MaxStamps:     card.MaxStamps,
		IsFull:        card.IsFull,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *lookupStampcard.Response) *LookupResponse {
	return &LookupResponse{
		Card:                 FromCardView(resp.Card),
		VerificationRequired: resp.VerificationRequired,
		MaskedEmail:          resp.MaskedEmail,
	}
}
