package send_verification_code

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kparturi/shop-backend/internal/domain"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
	"github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
)

// Request re-sends a verification code to a card's email.
type Request struct {
	Email string
}

// Response reports the expiry of the freshly issued code.
type Response struct {
	ExpiresInSeconds int
}

// UseCase issues a fresh verification code. Issuing always overwrites
// whatever code was live before, so only the newest code verifies.
type UseCase struct {
	cardRepo      StampCardRepository
	codeStore     CodeStore
	emailSender   EmailSender
	codeGenerator CodeGenerator
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	cardRepo StampCardRepository,
	codeStore CodeStore,
	emailSender EmailSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		cardRepo:      cardRepo,
		codeStore:     codeStore,
		emailSender:   emailSender,
		codeGenerator: lookup_stampcard.RandomCodeGenerator{},
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	uc.logger.Info("SendVerificationCode: requested")

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	// Only emails that actually belong to a card get codes.
	card, err := uc.cardRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stampcardRepo.ErrCardNotFound) {
			uc.logger.Info("SendVerificationCode: no card for email")
			return nil, ErrCardNotFound
		}
		uc.logger.Error("SendVerificationCode: failed to get card: %v", err)
		return nil, fmt.Errorf("%w: failed to get card: %v", ErrInternal, err)
	}

	code, err := uc.codeGenerator.Generate()
	if err != nil {
		uc.logger.Error("SendVerificationCode: failed to generate code: %v", err)
		return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	verification := domain.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: uc.timeProvider.Now().Add(domain.VerificationCodeTTL),
	}
	if err := uc.codeStore.Save(ctx, verification); err != nil {
		uc.logger.Error("SendVerificationCode: failed to save code: %v", err)
		return nil, fmt.Errorf("%w: failed to save code: %v", ErrInternal, err)
	}

	if err := uc.emailSender.SendVerificationCode(ctx, email, code); err != nil {
		uc.logger.Error("SendVerificationCode: failed to send code: %v", err)
		return nil, fmt.Errorf("%w: failed to send code: %v", ErrInternal, err)
	}

	uc.logger.Info("SendVerificationCode: code sent for card id=%d", card.ID)

	return &Response{ExpiresInSeconds: int(domain.VerificationCodeTTL.Seconds())}, nil
}
