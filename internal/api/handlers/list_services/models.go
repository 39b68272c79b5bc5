package list_services

import (
	"github.com/kparturi/shop-backend/internal/domain"
)

// ServiceResponse HTTP model for one catalog entry.
type ServiceResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Price            float64 `json:"price"`
	DurationMinutes  int     `json:"durationMinutes"`
	Category         string  `json:"category"`
	AddOnType        string  `json:"addOnType"`
	IsMainSelectable bool    `json:"isMainSelectable"`

	// OfferableAddOnIDs lists the add-ons combinable with this entry
	// when it anchors the booking. Empty for add-on-only services.
	OfferableAddOnIDs []int64 `json:"offerableAddOnIds"`
}

// ServiceListResponse HTTP response model.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices converts the catalog, resolving the offerable
// add-ons of each main-selectable entry so the client can render the
// whole wizard from one response.
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		item := ServiceResponse{
			ID:                svc.ID,
			Name:              svc.Name,
			Description:       svc.Description,
			Price:             svc.Price,
			DurationMinutes:   svc.DurationMinutes,
			Category:          svc.Category,
			AddOnType:         string(svc.AddOnType),
			IsMainSelectable:  svc.IsMainSelectable(),
			OfferableAddOnIDs: make([]int64, 0),
		}

		if item.IsMainSelectable {
			for _, addOn := range domain.OfferableAddOns(svc, services) {
				item.OfferableAddOnIDs = append(item.OfferableAddOnIDs, addOn.ID)
			}
		}

		resp.Services = append(resp.Services, item)
	}

	return resp
}
