package lookup_stampcard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kparturi/shop-backend/internal/domain"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
)

// UseCase resolves a loyalty lookup. Referral codes and recently
// verified identifiers return the card straight away; an email
// identifier without a verified session gets a fresh code sent to the
// card's address and must verify first.
type UseCase struct {
	cardRepo      StampCardRepository
	codeStore     CodeStore
	identCache    IdentifierCache
	emailSender   EmailSender
	codeGenerator CodeGenerator
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	cardRepo StampCardRepository,
	codeStore CodeStore,
	identCache IdentifierCache,
	emailSender EmailSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		cardRepo:      cardRepo,
		codeStore:     codeStore,
		identCache:    identCache,
		emailSender:   emailSender,
		codeGenerator: RandomCodeGenerator{},
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	identifier := strings.TrimSpace(req.Identifier)
	uc.logger.Info("LookupStampCard: client=%s", req.ClientID)

	// 1. Validate.
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}

	// 2. Find the card.
	card, err := uc.cardRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, stampcardRepo.ErrCardNotFound) {
			// A stale cached identifier must not survive a failed lookup.
			if clearErr := uc.identCache.Clear(ctx, req.ClientID); clearErr != nil {
				uc.logger.Warn("LookupStampCard: failed to clear identifier cache: %v", clearErr)
			}
			uc.logger.Info("LookupStampCard: no card for identifier")
			return nil, ErrCardNotFound
		}
		uc.logger.Error("LookupStampCard: failed to get card: %v", err)
		return nil, fmt.Errorf("%w: failed to get card: %v", ErrInternal, err)
	}

	// 3. A client that recently verified this identifier skips the email
	// round trip.
	cached, err := uc.identCache.Get(ctx, req.ClientID)
	if err != nil {
		uc.logger.Warn("LookupStampCard: identifier cache unavailable: %v", err)
	} else if cached != "" && strings.EqualFold(cached, identifier) {
		uc.logger.Info("LookupStampCard: cache hit, returning card id=%d", card.ID)
		return &Response{Card: cardView(card)}, nil
	}

	// 4. Referral codes carry no address to impersonate, so they resolve
	// directly; only email identifiers need a verified session.
	if !strings.Contains(identifier, "@") {
		if err := uc.identCache.Set(ctx, req.ClientID, identifier); err != nil {
			uc.logger.Warn("LookupStampCard: failed to cache identifier: %v", err)
		}
		uc.logger.Info("LookupStampCard: referral code resolved, returning card id=%d", card.ID)
		return &Response{Card: cardView(card)}, nil
	}

	// 5. No verified session for an email identifier: challenge via the
	// card's address.
	if card.Email == nil || *card.Email == "" {
		uc.logger.Warn("LookupStampCard: card id=%d has no email", card.ID)
		return nil, ErrNoEmailOnCard
	}

	code, err := uc.codeGenerator.Generate()
	if err != nil {
		uc.logger.Error("LookupStampCard: failed to generate code: %v", err)
		return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	verification := domain.VerificationCode{
		Email:     strings.ToLower(*card.Email),
		Code:      code,
		ExpiresAt: uc.timeProvider.Now().Add(domain.VerificationCodeTTL),
	}
	if err := uc.codeStore.Save(ctx, verification); err != nil {
		uc.logger.Error("LookupStampCard: failed to save code: %v", err)
		return nil, fmt.Errorf("%w: failed to save code: %v", ErrInternal, err)
	}

	if err := uc.emailSender.SendVerificationCode(ctx, *card.Email, code); err != nil {
		uc.logger.Error("LookupStampCard: failed to send code: %v", err)
		return nil, fmt.Errorf("%w: failed to send code: %v", ErrInternal, err)
	}

	uc.logger.Info("LookupStampCard: verification code sent for card id=%d", card.ID)

	return &Response{
		VerificationRequired: true,
		MaskedEmail:          maskEmail(*card.Email),
	}, nil
}

func cardView(card *domain.StampCard) *CardView {
	return &CardView{
		ID:            card.ID,
		Name:          card.Name,
		ReferralCode:  card.ReferralCode,
		StampCount:    card.StampCount,
		ReferralCount: card.ReferralCount,
		MaxStamps:     domain.MaxStamps,
		IsFull:        card.IsFull(),
	}
}

// maskEmail keeps the first character of the local part: "m***@host".
func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
