package domain

// AddOnType classifies a service for the add-on offering and
// mutual-exclusivity rules.
type AddOnType string

const (
	AddOnTypeHair    AddOnType = "hair_add_on"
	AddOnTypeBeard   AddOnType = "beard_add_on"
	AddOnTypeGeneral AddOnType = "general_add_on"
	AddOnTypeKid     AddOnType = "kid_add_on"
)

// Service is a purchasable offering: either a main service that anchors a
// booking, or an add-on combinable with one.
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
	IsActive        bool
	AddOnType       AddOnType
}

// IsMainSelectable reports whether the service can anchor a booking.
// General add-ons (hair wash and the like) are never bookable on their own.
func (s *Service) IsMainSelectable() bool {
	switch s.AddOnType {
	case AddOnTypeHair, AddOnTypeBeard, AddOnTypeKid:
		return true
	default:
		return false
	}
}

// OfferableAddOns returns the add-ons that may be combined with the given
// main service, preserving the order of all:
//
//   - general add-ons are always offered
//   - a hair main service additionally offers beard add-ons
//   - a beard main service additionally offers hair add-ons
//   - a kid main service offers general add-ons only
//
// The main service itself and inactive services are never offered.
func OfferableAddOns(main *Service, all []*Service) []*Service {
	if main == nil {
		return nil
	}

	var extra AddOnType
	switch main.AddOnType {
	case AddOnTypeHair:
		extra = AddOnTypeBeard
	case AddOnTypeBeard:
		extra = AddOnTypeHair
	}

	offerable := make([]*Service, 0)
	for _, svc := range all {
		if !svc.IsActive || svc.ID == main.ID {
			continue
		}
		if svc.AddOnType == AddOnTypeGeneral || (extra != "" && svc.AddOnType == extra) {
			offerable = append(offerable, svc)
		}
	}
	return offerable
}
