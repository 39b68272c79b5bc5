package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kparturi/shop-backend/internal/domain"
)

type fakeSubmitter struct {
	submitted *domain.BookingDraft
	result    *Submission
	err       error
}

func (f *fakeSubmitter) Submit(_ context.Context, draft *domain.BookingDraft) (*Submission, error) {
	f.submitted = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

var (
	haircut = &domain.Service{ID: 1, Name: "Hiustenleikkaus", Price: 25, DurationMinutes: 30, IsActive: true, AddOnType: domain.AddOnTypeHair}
	beard   = &domain.Service{ID: 2, Name: "Parran muotoilu", Price: 15, DurationMinutes: 15, IsActive: true, AddOnType: domain.AddOnTypeBeard}
)

func validDetails() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  "Matti Meikäläinen",
		Phone: "+358401234567",
		Email: "matti@example.com",
	}
}

// walk a wizard to the confirmation step with complete data.
func atConfirm(t *testing.T, w *Wizard) {
	t.Helper()
	w.SelectMainService(haircut)
	require.NoError(t, w.Next())
	w.SelectSlot("2026-09-07", "10:00")
	require.NoError(t, w.Next())
	w.SetDetails(validDetails())
	require.NoError(t, w.Next())
	require.Equal(t, StepConfirm, w.Step())
}

func TestWizardGating(t *testing.T) {
	t.Run("services step requires a main service", func(t *testing.T) {
		w := New(&fakeSubmitter{})
		assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

		w.SelectMainService(haircut)
		assert.NoError(t, w.Next())
		assert.Equal(t, StepDateTime, w.Step())
	})

	t.Run("date step requires a slot", func(t *testing.T) {
		w := New(&fakeSubmitter{})
		w.SelectMainService(haircut)
		require.NoError(t, w.Next())

		assert.ErrorIs(t, w.Next(), ErrStepIncomplete)
		w.SelectSlot("2026-09-07", "10:00")
		assert.NoError(t, w.Next())
	})

	t.Run("details step requires valid details", func(t *testing.T) {
		w := New(&fakeSubmitter{})
		w.SelectMainService(haircut)
		require.NoError(t, w.Next())
		w.SelectSlot("2026-09-07", "10:00")
		require.NoError(t, w.Next())

		w.SetDetails(domain.CustomerDetails{Name: "M", Phone: "123", Email: "nope"})
		assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

		w.SetDetails(validDetails())
		assert.NoError(t, w.Next())
	})
}

func TestWizardSelectionInvalidatesSlot(t *testing.T) {
	w := New(&fakeSubmitter{})
	w.SelectMainService(haircut)
	require.NoError(t, w.Next())
	w.SelectSlot("2026-09-07", "10:00")

	t.Run("toggling an add-on clears the slot", func(t *testing.T) {
		w.ToggleAddOn(beard)
		draft := w.Draft()
		assert.Empty(t, draft.SelectedDate)
		assert.Empty(t, draft.SelectedTime)
	})

	t.Run("changing the main service clears the slot", func(t *testing.T) {
		w.SelectSlot("2026-09-07", "11:00")
		w.SelectMainService(beard)
		draft := w.Draft()
		assert.Empty(t, draft.SelectedTime)
		assert.Empty(t, draft.AddOns, "add-ons follow the main service")
	})
}

func TestWizardBack(t *testing.T) {
	w := New(&fakeSubmitter{})
	assert.ErrorIs(t, w.Back(), ErrAtFirstStep)

	w.SelectMainService(haircut)
	require.NoError(t, w.Next())
	require.NoError(t, w.Back())
	assert.Equal(t, StepServices, w.Step())

	draft := w.Draft()
	assert.NotNil(t, draft.MainService, "going back keeps the data")
}

func TestWizardConfirm(t *testing.T) {
	t.Run("early confirm is rejected", func(t *testing.T) {
		w := New(&fakeSubmitter{})
		_, err := w.Confirm(context.Background())
		assert.ErrorIs(t, err, ErrNotAtConfirm)
	})

	t.Run("success submits the draft and resets", func(t *testing.T) {
		submitter := &fakeSubmitter{result: &Submission{BookingID: 9}}
		w := New(submitter)
		atConfirm(t, w)

		result, err := w.Confirm(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(9), result.BookingID)

		require.NotNil(t, submitter.submitted)
		assert.Equal(t, haircut, submitter.submitted.MainService)

		assert.Equal(t, StepServices, w.Step())
		assert.Nil(t, w.Draft().MainService)
	})

	t.Run("failure keeps the draft for a retry", func(t *testing.T) {
		submitter := &fakeSubmitter{err: errors.New("slot taken")}
		w := New(submitter)
		atConfirm(t, w)

		_, err := w.Confirm(context.Background())
		require.Error(t, err)

		assert.Equal(t, StepConfirm, w.Step())
		assert.NotNil(t, w.Draft().MainService)
	})
}
