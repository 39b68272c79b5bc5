package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
	createBooking "github.com/kparturi/shop-backend/internal/usecase/create_booking"
)

type fakeCreator struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeCreator) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestUseCaseSubmitterTranslatesDraft(t *testing.T) {
	creator := &fakeCreator{resp: &createBooking.Response{ID: 42}}
	submitter := NewUseCaseSubmitter(creator)

	draft := &domain.BookingDraft{
		MainService:  haircut,
		AddOns:       []*domain.Service{beard},
		SelectedDate: "2026-09-07",
		SelectedTime: "10:00",
		Details: domain.CustomerDetails{
			Name:  "Matti Meikäläinen",
			Phone: "+358401234567",
			Email: "matti@example.com",
			Notes: "  sivut lyhyeksi  ",
		},
	}

	result, err := submitter.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.BookingID)

	require.NotNil(t, creator.req)
	assert.Equal(t, "Matti Meikäläinen", creator.req.CustomerName)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), creator.req.Date)
	assert.Equal(t, "10:00", string(creator.req.StartTime))
	assert.Equal(t, int64(1), creator.req.ServiceID)
	assert.Equal(t, []int64{2}, creator.req.AddOnIDs)
	require.NotNil(t, creator.req.Notes)
	assert.Equal(t, "sivut lyhyeksi", *creator.req.Notes)
}

func TestUseCaseSubmitterEmptyNotesStayNil(t *testing.T) {
	creator := &fakeCreator{resp: &createBooking.Response{ID: 7}}
	submitter := NewUseCaseSubmitter(creator)

	draft := &domain.BookingDraft{
		MainService:  haircut,
		SelectedDate: "2026-09-07",
		SelectedTime: "10:00",
		Details:      validDetails(),
	}

	_, err := submitter.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Nil(t, creator.req.Notes)
}

func TestUseCaseSubmitterRejectsIncompleteDraft(t *testing.T) {
	submitter := NewUseCaseSubmitter(&fakeCreator{})

	_, err := submitter.Submit(context.Background(), &domain.BookingDraft{})
	assert.ErrorIs(t, err, ErrStepIncomplete)
}

func TestUseCaseSubmitterPropagatesFailure(t *testing.T) {
	wantErr := errors.New("slot taken")
	submitter := NewUseCaseSubmitter(&fakeCreator{err: wantErr})

	draft := &domain.BookingDraft{
		MainService:  haircut,
		SelectedDate: "2026-09-07",
		SelectedTime: "10:00",
		Details:      validDetails(),
	}

	_, err := submitter.Submit(context.Background(), draft)
	assert.ErrorIs(t, err, wantErr)
}
