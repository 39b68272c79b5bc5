package request_stampcard

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kparturi/shop-backend/internal/domain"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Request applies for a new stamp card.
type Request struct {
	Name  string
	Email string
}

// Response is the recorded application.
type Response struct {
	ID     int64
	Status string
}

// StampCardRepository checks existing cards and records applications.
type StampCardRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StampCard, error)
	FindPendingRequestByEmail(ctx context.Context, email string) (*domain.StampCardRequest, error)
	CreateRequest(ctx context.Context, req *domain.StampCardRequest) (*domain.StampCardRequest, error)
}

// Logger is the logging dependency of this usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UseCase records a new-card application. Staff review applications out
// of band; duplicates per email are rejected while one is pending or a
// card already exists.
type UseCase struct {
	cardRepo StampCardRepository
	logger   Logger
}

func NewUseCase(cardRepo StampCardRepository, logger Logger) *UseCase {
	return &UseCase{cardRepo: cardRepo, logger: logger}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	uc.logger.Info("RequestStampCard: application received")

	// 1. Validate.
	if len(name) < domain.MinCustomerNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, domain.MinCustomerNameLength)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	// 2. An existing card wins over a new application.
	_, err := uc.cardRepo.GetByEmail(ctx, email)
	if err == nil {
		uc.logger.Info("RequestStampCard: card already exists")
		return nil, ErrCardExists
	}
	if !errors.Is(err, stampcardRepo.ErrCardNotFound) {
		uc.logger.Error("RequestStampCard: failed to check existing card: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing card: %v", ErrInternal, err)
	}

	// 3. One pending application per email.
	_, err = uc.cardRepo.FindPendingRequestByEmail(ctx, email)
	if err == nil {
		uc.logger.Info("RequestStampCard: request already pending")
		return nil, ErrRequestPending
	}
	if !errors.Is(err, stampcardRepo.ErrRequestNotFound) {
		uc.logger.Error("RequestStampCard: failed to check pending request: %v", err)
		return nil, fmt.Errorf("%w: failed to check pending request: %v", ErrInternal, err)
	}

	// 4. Record it.
	created, err := uc.cardRepo.CreateRequest(ctx, &domain.StampCardRequest{Name: name, Email: email})
	if err != nil {
		uc.logger.Error("RequestStampCard: failed to create request: %v", err)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	uc.logger.Info("RequestStampCard: request id=%d recorded", created.ID)

	return &Response{ID: created.ID, Status: string(created.Status)}, nil
}
