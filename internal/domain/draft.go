package domain

import (
	"regexp"
	"strings"
)

// CustomerDetails is the contact block collected in the wizard.
type CustomerDetails struct {
	Name  string
	Phone string
	Email string
	Notes string
}

var (
	// Finnish numbers: +358 or a leading 0, then 8-9 digits.
	phonePattern = regexp.MustCompile(`^(\+358|0)[0-9]{8,9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsComplete reports whether the details pass the submission rules:
// a trimmed name of at least two characters, a Finnish phone number and
// a plausible email address.
func (d CustomerDetails) IsComplete() bool {
	if len(strings.TrimSpace(d.Name)) < MinCustomerNameLength {
		return false
	}
	phone := strings.NewReplacer(" ", "", "-", "").Replace(d.Phone)
	if !phonePattern.MatchString(phone) {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(d.Email))
}

// BookingDraft is the transient, wizard-scoped state of one booking in
// progress. It lives in memory only and is discarded on close or reset
// after a successful submission.
type BookingDraft struct {
	MainService    *Service
	AddOns         []*Service
	SelectedDate   string // "YYYY-MM-DD", empty until chosen
	SelectedTime   string // "HH:MM", empty until chosen
	Details        CustomerDetails
}

// SelectMainService applies the main-service selection rule: choosing a
// service clears all add-ons (they are only meaningful relative to the
// main service), and choosing the already-selected service deselects it
// entirely.
func (d *BookingDraft) SelectMainService(svc *Service) {
	if svc != nil && d.MainService != nil && d.MainService.ID == svc.ID {
		d.MainService = nil
	} else {
		d.MainService = svc
	}
	d.AddOns = nil
}

// ToggleAddOn adds or removes an add-on. When adding a hair or beard
// add-on, any already-selected add-on of the same type is evicted first,
// so at most one of each may be selected at a time.
func (d *BookingDraft) ToggleAddOn(addOn *Service) {
	for i, existing := range d.AddOns {
		if existing.ID == addOn.ID {
			d.AddOns = append(d.AddOns[:i:i], d.AddOns[i+1:]...)
			return
		}
	}

	if addOn.AddOnType == AddOnTypeHair || addOn.AddOnType == AddOnTypeBeard {
		kept := make([]*Service, 0, len(d.AddOns))
		for _, existing := range d.AddOns {
			if existing.AddOnType != addOn.AddOnType {
				kept = append(kept, existing)
			}
		}
		d.AddOns = kept
	}

	d.AddOns = append(d.AddOns, addOn)
}

// TotalDurationMinutes is the main service duration plus all add-ons.
func (d *BookingDraft) TotalDurationMinutes() int {
	if d.MainService == nil {
		return 0
	}
	total := d.MainService.DurationMinutes
	for _, addOn := range d.AddOns {
		total += addOn.DurationMinutes
	}
	return total
}

// TotalPrice is the main service price plus all add-ons.
func (d *BookingDraft) TotalPrice() float64 {
	if d.MainService == nil {
		return 0
	}
	total := d.MainService.Price
	for _, addOn := range d.AddOns {
		total += addOn.Price
	}
	return total
}

// AllServices returns the main service followed by the add-ons in
// selection order. Nil when no main service is chosen.
func (d *BookingDraft) AllServices() []*Service {
	if d.MainService == nil {
		return nil
	}
	all := make([]*Service, 0, 1+len(d.AddOns))
	all = append(all, d.MainService)
	all = append(all, d.AddOns...)
	return all
}

// Reset returns the draft to its initial empty state.
func (d *BookingDraft) Reset() {
	*d = BookingDraft{}
}
