package verify_stampcard

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/infra/codes"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
)

// Request checks a verification code. ClientID identifies the caller's
// device so a successful check is remembered for later lookups.
type Request struct {
	ClientID string
	Email    string
	Code     string
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

// Response carries the card unlocked by the code.
type Response struct {
	Card *CardView
}

// UseCase verifies a code and returns the card. Codes are single-use:
// a correct code is deleted before the card is returned, an incorrect
// or expired one stays (the customer can retry until the TTL runs out).
type UseCase struct {
	cardRepo     StampCardRepository
	codeStore    CodeStore
	identCache   IdentifierCache
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	cardRepo StampCardRepository,
	codeStore CodeStore,
	identCache IdentifierCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		cardRepo:     cardRepo,
		codeStore:    codeStore,
		identCache:   identCache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	code := strings.TrimSpace(req.Code)
	uc.logger.Info("VerifyStampCard: client=%s", req.ClientID)

	// 1. Validate.
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(code) != domain.VerificationCodeLength {
		return nil, fmt.Errorf("%w: code must be %d digits", ErrInvalidInput, domain.VerificationCodeLength)
	}

	// 2. Fetch the live code.
	stored, err := uc.codeStore.Get(ctx, email)
	if err != nil {
		if errors.Is(err, codes.ErrCodeNotFound) {
			uc.logger.Info("VerifyStampCard: no live code for email")
			return nil, ErrCodeInvalid
		}
		uc.logger.Error("VerifyStampCard: failed to get code: %v", err)
		return nil, fmt.Errorf("%w: failed to get code: %v", ErrInternal, err)
	}

	// 3. Expiry first, then the digits.
	if stored.IsExpired(uc.timeProvider.Now()) {
		uc.logger.Info("VerifyStampCard: code expired")
		return nil, ErrCodeExpired
	}

	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		uc.logger.Info("VerifyStampCard: code mismatch")
		return nil, ErrCodeInvalid
	}

	// 4. Single use: retire the code before handing out the card.
	if err := uc.codeStore.Delete(ctx, email); err != nil {
		uc.logger.Error("VerifyStampCard: failed to delete code: %v", err)
		return nil, fmt.Errorf("%w: failed to delete code: %v", ErrInternal, err)
	}

	// 5. Load the card.
	card, err := uc.cardRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stampcardRepo.ErrCardNotFound) {
			uc.logger.Warn("VerifyStampCard: card vanished after verification")
			return nil, ErrCardNotFound
		}
		uc.logger.Error("VerifyStampCard: failed to get card: %v", err)
		return nil, fmt.Errorf("%w: failed to get card: %v", ErrInternal, err)
	}

	// 6. Remember the verified identifier; losing the cache entry only
	// costs the customer a future re-verification.
	if err := uc.identCache.Set(ctx, req.ClientID, email); err != nil {
		uc.logger.Warn("VerifyStampCard: failed to cache identifier: %v", err)
	}

	uc.logger.Info("VerifyStampCard: card id=%d unlocked", card.ID)

	return &Response{Card: &CardView{
		ID:            card.ID,
		Name:          card.Name,
		ReferralCode:  card.ReferralCode,
		StampCount:    card.StampCount,
		ReferralCount: card.ReferralCount,
		MaxStamps:     domain.MaxStamps,
		IsFull:        card.IsFull(),
	}}, nil
}
