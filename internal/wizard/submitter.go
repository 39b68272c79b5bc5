package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kparturi/shop-backend/internal/domain"
	createBooking "github.com/kparturi/shop-backend/internal/usecase/create_booking"
	"github.com/kparturi/shop-backend/pkg/ptr"
	"github.com/kparturi/shop-backend/pkg/types"
)

// BookingCreator is the slice of the booking usecase the submitter needs.
type BookingCreator interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// UseCaseSubmitter adapts the booking usecase to the wizard's Submitter,
// translating the draft into a submission request.
type UseCaseSubmitter struct {
	creator BookingCreator
}

func NewUseCaseSubmitter(creator BookingCreator) *UseCaseSubmitter {
	return &UseCaseSubmitter{creator: creator}
}

func (s *UseCaseSubmitter) Submit(ctx context.Context, draft *domain.BookingDraft) (*Submission, error) {
	if draft.MainService == nil {
		return nil, fmt.Errorf("%w: no main service selected", ErrStepIncomplete)
	}

	date, err := time.Parse(domain.DateFormat, draft.SelectedDate)
	if err != nil {
		return nil, fmt.Errorf("wizard: parse selected date %q: %w", draft.SelectedDate, err)
	}

	addOnIDs := make([]int64, 0, len(draft.AddOns))
	for _, addOn := range draft.AddOns {
		addOnIDs = append(addOnIDs, addOn.ID)
	}

	var notes *string
	if trimmed := strings.TrimSpace(draft.Details.Notes); trimmed != "" {
		notes = ptr.Ptr(trimmed)
	}

	resp, err := s.creator.Execute(ctx, &createBooking.Request{
		CustomerName:  draft.Details.Name,
		CustomerPhone: draft.Details.Phone,
		CustomerEmail: draft.Details.Email,
		Notes:         notes,
		Date:          date,
		StartTime:     types.TimeString(draft.SelectedTime),
		ServiceID:     draft.MainService.ID,
		AddOnIDs:      addOnIDs,
	})
	if err != nil {
		return nil, err
	}

	return &Submission{BookingID: resp.ID}, nil
}
