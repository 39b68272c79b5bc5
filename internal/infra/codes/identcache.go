package codes

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdentifierCache remembers which identifier a client last verified, so
// a repeated lookup within the window skips email re-verification.
// Entries expire via the Redis TTL alone.
type IdentifierCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdentifierCache(client *redis.Client, ttl time.Duration) *IdentifierCache {
	return &IdentifierCache{client: client, ttl: ttl}
}

func identKey(clientID string) string {
	return "stampcard:ident:" + clientID
}

// Get returns the cached identifier for the client, or "" when none is
// cached or the entry has expired.
func (c *IdentifierCache) Get(ctx context.Context, clientID string) (string, error) {
	value, err := c.client.Get(ctx, identKey(clientID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: IdentifierCache.Get: %v", ErrStore, err)
	}
	return value, nil
}

// Set stores the identifier for the client, resetting the TTL.
func (c *IdentifierCache) Set(ctx context.Context, clientID, identifier string) error {
	if err := c.client.Set(ctx, identKey(clientID), identifier, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: IdentifierCache.Set: %v", ErrStore, err)
	}
	return nil
}

// Clear drops the cached identifier, if any.
func (c *IdentifierCache) Clear(ctx context.Context, clientID string) error {
	if err := c.client.Del(ctx, identKey(clientID)).Err(); err != nil {
		return fmt.Errorf("%w: IdentifierCache.Clear: %v", ErrStore, err)
	}
	return nil
}
