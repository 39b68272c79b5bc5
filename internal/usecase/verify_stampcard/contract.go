package verify_stampcard

import (
	"context"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
)

// StampCardRepository reads loyalty cards.
type StampCardRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StampCard, error)
}

// CodeStore reads and retires verification codes.
type CodeStore interface {
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email string) error
}

// IdentifierCache remembers recently verified identifiers per client.
type IdentifierCache interface {
	Set(ctx context.Context, clientID, identifier string) error
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
