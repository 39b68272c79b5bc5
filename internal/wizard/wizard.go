package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/kparturi/shop-backend/internal/domain"
)

// Step is one screen of the booking flow.
type Step int

const (
	StepServices Step = iota + 1
	StepDateTime
	StepDetails
	StepConfirm
)

var (
	// ErrStepIncomplete is returned when the current step's requirements
	// are not met.
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")

	// ErrNotAtConfirm is returned when Confirm is called early.
	ErrNotAtConfirm = errors.New("wizard: not at the confirmation step")

	// ErrAtFirstStep is returned when Back is called on the first step.
	ErrAtFirstStep = errors.New("wizard: already at the first step")
)

// Submission is the outcome of a confirmed booking.
type Submission struct {
	BookingID int64
}

// Submitter turns a completed draft into a persisted booking.
type Submitter interface {
	Submit(ctx context.Context, draft *domain.BookingDraft) (*Submission, error)
}

// Wizard drives the four-step booking flow. Steps gate on their data:
// no advancing past services without a main service, past date/time
// without a slot, past details without valid customer data. Any change
// to the selection invalidates the chosen slot, because the appointment
// length changed.
type Wizard struct {
	step      Step
	draft     domain.BookingDraft
	submitter Submitter
}

func New(submitter Submitter) *Wizard {
	return &Wizard{step: StepServices, submitter: submitter}
}

func (w *Wizard) Step() Step                 { return w.step }
func (w *Wizard) Draft() domain.BookingDraft { return w.draft }

// SelectMainService picks (or re-picks, which deselects) the main
// service and drops the chosen slot.
func (w *Wizard) SelectMainService(svc *domain.Service) {
	w.draft.SelectMainService(svc)
	w.clearSlot()
}

// ToggleAddOn flips an add-on and drops the chosen slot.
func (w *Wizard) ToggleAddOn(svc *domain.Service) {
	w.draft.ToggleAddOn(svc)
	w.clearSlot()
}

// SelectSlot records the chosen date and start time.
func (w *Wizard) SelectSlot(date, startTime string) {
	w.draft.SelectedDate = date
	w.draft.SelectedTime = startTime
}

// SetDetails records the customer details.
func (w *Wizard) SetDetails(details domain.CustomerDetails) {
	w.draft.Details = details
}

func (w *Wizard) clearSlot() {
	w.draft.SelectedDate = ""
	w.draft.SelectedTime = ""
}

// CanProceed reports whether the current step's requirements are met.
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepServices:
		return w.draft.MainService != nil
	case StepDateTime:
		return w.draft.SelectedDate != "" && w.draft.SelectedTime != ""
	case StepDetails:
		return w.draft.Details.IsComplete()
	case StepConfirm:
		return true
	default:
		return false
	}
}

// Next advances one step.
func (w *Wizard) Next() error {
	if w.step >= StepConfirm {
		return ErrNotAtConfirm
	}
	if !w.CanProceed() {
		return fmt.Errorf("%w: step %d", ErrStepIncomplete, w.step)
	}
	w.step++
	return nil
}

// Back returns one step without losing any data.
func (w *Wizard) Back() error {
	if w.step <= StepServices {
		return ErrAtFirstStep
	}
	w.step--
	return nil
}

// Confirm submits the draft. On success the wizard resets to a blank
// first step; on failure everything is kept so the customer can retry.
func (w *Wizard) Confirm(ctx context.Context) (*Submission, error) {
	if w.step != StepConfirm {
		return nil, ErrNotAtConfirm
	}

	// Submit a snapshot so the reset below cannot race the submitter's
	// view of the draft.
	snapshot := w.draft
	result, err := w.submitter.Submit(ctx, &snapshot)
	if err != nil {
		return nil, err
	}

	w.draft.Reset()
	w.step = StepServices
	return result, nil
}
