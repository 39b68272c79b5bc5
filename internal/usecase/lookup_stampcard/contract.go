package lookup_stampcard

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
)

// StampCardRepository reads loyalty cards.
type StampCardRepository interface {
	GetByIdentifier(ctx context.Context, identifier string) (*domain.StampCard, error)
}

// CodeStore keeps the live verification codes.
type CodeStore interface {
	Save(ctx context.Context, code domain.VerificationCode) error
}

// IdentifierCache remembers recently verified identifiers per client.
type IdentifierCache interface {
	Get(ctx context.Context, clientID string) (string, error)
	Set(ctx context.Context, clientID, identifier string) error
	Clear(ctx context.Context, clientID string) error
}

// EmailSender delivers verification codes.
type EmailSender interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// CodeGenerator produces verification codes (swappable in tests).
type CodeGenerator interface {
	Generate() (string, error)
}

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

// RandomCodeGenerator draws uniform digit codes from crypto/rand.
type RandomCodeGenerator struct{}

func (RandomCodeGenerator) Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < domain.VerificationCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", domain.VerificationCodeLength, n), nil
}
