package send_verification_code

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
)

// StampCardRepository reads loyalty cards.
type StampCardRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StampCard, error)
}

// CodeStore keeps the live verification codes.
type CodeStore interface {
	Save(ctx context.Context, code domain.VerificationCode) error
}

// EmailSender delivers verification codes.
type EmailSender interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// CodeGenerator produces verification codes (swappable in tests).
type CodeGenerator = lookup_stampcard.CodeGenerator

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging dependency of this usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
