package request_stampcard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	stampcardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
	"github.com/kparturi/shop-backend/pkg/ptr"
)

type fakeCardRepo struct {
	card       *domain.StampCard
	cardErr    error
	pending    *domain.StampCardRequest
	pendingErr error
	created    *domain.StampCardRequest
}

func (f *fakeCardRepo) GetByEmail(_ context.Context, _ string) (*domain.StampCard, error) {
	return f.card, f.cardErr
}

func (f *fakeCardRepo) FindPendingRequestByEmail(_ context.Context, _ string) (*domain.StampCardRequest, error) {
	return f.pending, f.pendingErr
}

func (f *fakeCardRepo) CreateRequest(_ context.Context, req *domain.StampCardRequest) (*domain.StampCardRequest, error) {
	req.ID = 42
	req.Status = domain.RequestStatusPending
	f.created = req
	return req, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteRecordsRequest(t *testing.T) {
	repo := &fakeCardRepo{cardErr: stampcardRepo.ErrCardNotFound, pendingErr: stampcardRepo.ErrRequestNotFound}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Name: " Matti ", Email: "MATTI@Example.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.RequestStatusPending), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Matti", repo.created.Name)
	assert.Equal(t, "matti@example.com", repo.created.Email, "email stored lowercased")
}

func TestExecuteExistingCardWins(t *testing.T) {
	repo := &fakeCardRepo{card: &domain.StampCard{ID: 1, Email: ptr.Ptr("matti@example.com")}}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Name: "Matti", Email: "matti@example.com"})
	assert.ErrorIs(t, err, ErrCardExists)
	assert.Nil(t, repo.created)
}

func TestExecutePendingRequestBlocks(t *testing.T) {
	repo := &fakeCardRepo{
		cardErr: stampcardRepo.ErrCardNotFound,
		pending: &domain.StampCardRequest{ID: 5, Status: domain.RequestStatusPending},
	}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Name: "Matti", Email: "matti@example.com"})
	assert.ErrorIs(t, err, ErrRequestPending)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeCardRepo{}, nopLogger{})

	t.Run("short name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Name: "M", Email: "matti@example.com"})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Name: "Matti", Email: "nope"})
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}
