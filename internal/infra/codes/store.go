package codes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kparturi/shop-backend/internal/domain"
)

// Store keeps verification codes in Redis, one live code per lowercased
// email. The value carries its own expiry timestamp so the verify path
// can compare against an injected clock; the Redis TTL is a backstop
// that garbage-collects abandoned codes.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func codeKey(email string) string {
	return "stampcard:code:" + strings.ToLower(strings.TrimSpace(email))
}

// Save stores the code for its email, replacing any previous one.
func (s *Store) Save(ctx context.Context, code domain.VerificationCode) error {
	value := code.Code + "|" + strconv.FormatInt(code.ExpiresAt.Unix(), 10)
	if err := s.client.Set(ctx, codeKey(code.Email), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStore, err)
	}
	return nil
}

// Get returns the live code for the email, or ErrCodeNotFound.
func (s *Store) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	value, err := s.client.Get(ctx, codeKey(email)).Result()
	if err == redis.Nil {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStore, err)
	}

	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: Get: %q", ErrBadValue, value)
	}
	unix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %q", ErrBadValue, value)
	}

	return &domain.VerificationCode{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Code:      parts[0],
		ExpiresAt: time.Unix(unix, 0),
	}, nil
}

// Delete removes the code for the email. Deleting a missing code is not
// an error: codes are single-use and the delete races the TTL.
func (s *Store) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKey(email)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}
