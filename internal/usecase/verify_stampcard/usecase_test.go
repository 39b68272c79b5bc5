package verify_stampcard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/infra/codes"
	"github.com/kparturi/shop-backend/pkg/ptr"
)

type fakeCardRepo struct {
	card *domain.StampCard
	err  error
}

func (f *fakeCardRepo) GetByEmail(_ context.Context, _ string) (*domain.StampCard, error) {
	return f.card, f.err
}

type fakeCodeStore struct {
	code    *domain.VerificationCode
	getErr  error
	deleted bool
}

func (f *fakeCodeStore) Get(_ context.Context, _ string) (*domain.VerificationCode, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.code, nil
}

func (f *fakeCodeStore) Delete(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

type fakeIdentCache struct {
	clientID   string
	identifier string
}

func (f *fakeIdentCache) Set(_ context.Context, clientID, identifier string) error {
	f.clientID = clientID
	f.identifier = identifier
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var issued = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func liveCode() *domain.VerificationCode {
	return &domain.VerificationCode{
		Email:     "matti@example.com",
		Code:      "123456",
		ExpiresAt: issued.Add(15 * time.Minute), // 10:15
	}
}

func newTestUseCase(repo *fakeCardRepo, store *fakeCodeStore, cache *fakeIdentCache, now time.Time) *UseCase {
	uc := NewUseCase(repo, store, cache, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{ClientID: "device-1", Email: "Matti@Example.com", Code: "123456"}
}

func TestExecuteSuccess(t *testing.T) {
	card := &domain.StampCard{ID: 7, Email: ptr.Ptr("matti@example.com"), ReferralCode: "MATTI123", StampCount: 10}
	store := &fakeCodeStore{code: liveCode()}
	cache := &fakeIdentCache{}
	// 10:14, one minute before expiry.
	uc := newTestUseCase(&fakeCardRepo{card: card}, store, cache, issued.Add(14*time.Minute))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Card)
	assert.Equal(t, int64(7), resp.Card.ID)
	assert.True(t, resp.Card.IsFull)
	assert.True(t, store.deleted, "codes are single use")
	assert.Equal(t, "device-1", cache.clientID)
	assert.Equal(t, "matti@example.com", cache.identifier)
}

func TestExecuteExpiredCode(t *testing.T) {
	store := &fakeCodeStore{code: liveCode()}
	// 10:16, one minute past expiry.
	uc := newTestUseCase(&fakeCardRepo{}, store, &fakeIdentCache{}, issued.Add(16*time.Minute))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeExpired)
	assert.False(t, store.deleted, "expired code is left for the TTL to collect")
}

func TestExecuteExactExpiryIsExpired(t *testing.T) {
	store := &fakeCodeStore{code: liveCode()}
	uc := newTestUseCase(&fakeCardRepo{}, store, &fakeIdentCache{}, issued.Add(15*time.Minute))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestExecuteWrongCode(t *testing.T) {
	store := &fakeCodeStore{code: liveCode()}
	cache := &fakeIdentCache{}
	uc := newTestUseCase(&fakeCardRepo{}, store, cache, issued.Add(time.Minute))

	req := validRequest()
	req.Code = "654321"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCodeInvalid)
	assert.False(t, store.deleted, "a wrong guess must not burn the code")
	assert.Empty(t, cache.clientID)
}

func TestExecuteNoLiveCode(t *testing.T) {
	store := &fakeCodeStore{getErr: codes.ErrCodeNotFound}
	uc := newTestUseCase(&fakeCardRepo{}, store, &fakeIdentCache{}, issued)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestExecuteMalformedCode(t *testing.T) {
	uc := newTestUseCase(&fakeCardRepo{}, &fakeCodeStore{}, &fakeIdentCache{}, issued)

	req := validRequest()
	req.Code = "123"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
