package lookup_stampcard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
	"github.com/kparturi/shop-backend/pkg/ptr"
)

type fakeCardRepo struct {
	card *domain.StampCard
	err  error
}

func (f *fakeCardRepo) GetByIdentifier(_ context.Context, _ string) (*domain.StampCard, error) {
	return f.card, f.err
}

type fakeCodeStore struct {
	saved *domain.VerificationCode
	err   error
}

func (f *fakeCodeStore) Save(_ context.Context, code domain.VerificationCode) error {
	f.saved = &code
	return f.err
}

type fakeIdentCache struct {
	value   string
	stored  string
	cleared bool
}

func (f *fakeIdentCache) Get(_ context.Context, _ string) (string, error) { return f.value, nil }
func (f *fakeIdentCache) Set(_ context.Context, _ string, identifier string) error {
	f.stored = identifier
	return nil
}
func (f *fakeIdentCache) Clear(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

type fakeEmailSender struct {
	to   string
	code string
	err  error
}

func (f *fakeEmailSender) SendVerificationCode(_ context.Context, to, code string) error {
	f.to = to
	f.code = code
	return f.err
}

type fixedCode struct{ code string }

func (f fixedCode) Generate() (string, error) { return f.code, nil }

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCard() *domain.StampCard {
	return &domain.StampCard{
		ID:           1,
		Email:        ptr.Ptr("matti@example.com"),
		Name:         ptr.Ptr("Matti"),
		ReferralCode: "MATTI123",
		StampCount:   4,
	}
}

func newTestUseCase(repo *fakeCardRepo, store *fakeCodeStore, cache *fakeIdentCache, emails *fakeEmailSender, now time.Time) *UseCase {
	uc := NewUseCase(repo, store, cache, emails, nopLogger{})
	uc.codeGenerator = fixedCode{code: "123456"}
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecuteUnknownIdentifierClearsCache(t *testing.T) {
	cache := &fakeIdentCache{value: "matti@example.com"}
	uc := newTestUseCase(&fakeCardRepo{err: stampcardRepo.ErrCardNotFound}, &fakeCodeStore{}, cache, &fakeEmailSender{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.True(t, cache.cleared, "stale cache entry must be dropped")
}

func TestExecuteCacheHitSkipsVerification(t *testing.T) {
	cache := &fakeIdentCache{value: "MATTI@example.com"}
	store := &fakeCodeStore{}
	emails := &fakeEmailSender{}
	uc := newTestUseCase(&fakeCardRepo{card: testCard()}, store, cache, emails, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "matti@example.com"})
	require.NoError(t, err)

	require.NotNil(t, resp.Card)
	assert.False(t, resp.VerificationRequired)
	assert.Equal(t, int64(1), resp.Card.ID)
	assert.Equal(t, 4, resp.Card.StampCount)
	assert.Nil(t, store.saved, "no code issued on a cache hit")
	assert.Empty(t, emails.to)
}

func TestExecuteReferralCodeResolvesDirectly(t *testing.T) {
	cache := &fakeIdentCache{}
	store := &fakeCodeStore{}
	emails := &fakeEmailSender{}
	uc := newTestUseCase(&fakeCardRepo{card: testCard()}, store, cache, emails, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "MATTI123"})
	require.NoError(t, err)

	require.NotNil(t, resp.Card)
	assert.False(t, resp.VerificationRequired, "referral-code lookup must not demand verification")
	assert.Equal(t, int64(1), resp.Card.ID)
	assert.Equal(t, "MATTI123", cache.stored, "identifier cached on successful resolve")
	assert.Nil(t, store.saved, "no code issued for a referral code")
	assert.Empty(t, emails.to)
}

func TestExecuteReferralCodeWorksWithoutEmail(t *testing.T) {
	card := testCard()
	card.Email = nil
	uc := newTestUseCase(&fakeCardRepo{card: card}, &fakeCodeStore{}, &fakeIdentCache{}, &fakeEmailSender{}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "MATTI123"})
	require.NoError(t, err)
	require.NotNil(t, resp.Card)
	assert.False(t, resp.VerificationRequired)
}

func TestExecuteEmailChallengeIssuesCode(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeCodeStore{}
	emails := &fakeEmailSender{}
	uc := newTestUseCase(&fakeCardRepo{card: testCard()}, store, &fakeIdentCache{}, emails, now)

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "matti@example.com"})
	require.NoError(t, err)

	assert.True(t, resp.VerificationRequired)
	assert.Nil(t, resp.Card)
	assert.Equal(t, "m***@example.com", resp.MaskedEmail)

	require.NotNil(t, store.saved)
	assert.Equal(t, "matti@example.com", store.saved.Email)
	assert.Equal(t, "123456", store.saved.Code)
	assert.Equal(t, now.Add(15*time.Minute), store.saved.ExpiresAt)

	assert.Equal(t, "matti@example.com", emails.to)
	assert.Equal(t, "123456", emails.code)
}

func TestExecuteEmailCardWithoutAddress(t *testing.T) {
	card := testCard()
	card.Email = nil
	uc := newTestUseCase(&fakeCardRepo{card: card}, &fakeCodeStore{}, &fakeIdentCache{}, &fakeEmailSender{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{ClientID: "device-1", Identifier: "matti@example.com"})
	assert.ErrorIs(t, err, ErrNoEmailOnCard)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "m***@example.com", maskEmail("matti@example.com"))
	assert.Equal(t, "***", maskEmail("broken"))
}
