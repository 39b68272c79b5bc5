package codes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kparturi/shop-backend/internal/domain"
)

func TestNewIdentifierCacheKeepsConfiguredTTL(t *testing.T) {
	cache := NewIdentifierCache(nil, domain.IdentifierCacheTTL)
	assert.Equal(t, 24*time.Hour, cache.ttl, "every Set carries this expiry")
}

func TestIdentKeyIsClientScoped(t *testing.T) {
	assert.Equal(t, "stampcard:ident:device-1", identKey("device-1"))
	assert.NotEqual(t, identKey("device-1"), identKey("device-2"))
}
