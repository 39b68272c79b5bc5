package get_week_slots

import (
	"fmt"

	"github.com/kparturi/shop-backend/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.AddOnIDs))
	for _, id := range req.AddOnIDs {
		if id <= 0 {
			return fmt.Errorf("%w: addOnID must be positive", ErrInvalidInput)
		}
		if id == req.ServiceID {
			return fmt.Errorf("%w: addOnID equals serviceID", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate addOnID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// resolveSelection maps the requested ids onto catalog services and
// enforces the combination rules: the main service must be bookable on
// its own and every add-on must be offerable with it.
func resolveSelection(req *Request, services []*domain.Service) (*domain.Service, []*domain.Service, error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	main, ok := byID[req.ServiceID]
	if !ok {
		return nil, nil, ErrServiceNotFound
	}
	if !main.IsMainSelectable() {
		return nil, nil, ErrServiceNotBookable
	}

	offerable := make(map[int64]struct{})
	for _, svc := range domain.OfferableAddOns(main, services) {
		offerable[svc.ID] = struct{}{}
	}

	addOns := make([]*domain.Service, 0, len(req.AddOnIDs))
	typeTaken := make(map[domain.AddOnType]struct{})
	for _, id := range req.AddOnIDs {
		svc, ok := byID[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: id=%d", ErrAddOnNotAllowed, id)
		}
		if _, ok := offerable[id]; !ok {
			return nil, nil, fmt.Errorf("%w: id=%d", ErrAddOnNotAllowed, id)
		}
		// Hair and beard add-ons are exclusive within their type.
		if svc.AddOnType == domain.AddOnTypeHair || svc.AddOnType == domain.AddOnTypeBeard {
			if _, taken := typeTaken[svc.AddOnType]; taken {
				return nil, nil, fmt.Errorf("%w: id=%d conflicts with another add-on", ErrAddOnNotAllowed, id)
			}
			typeTaken[svc.AddOnType] = struct{}{}
		}
		addOns = append(addOns, svc)
	}

	return main, addOns, nil
}
