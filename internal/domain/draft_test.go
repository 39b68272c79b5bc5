package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	haircut   = &Service{ID: 1, Name: "Hiustenleikkaus", Price: 25, DurationMinutes: 30, IsActive: true, AddOnType: AddOnTypeHair}
	machine   = &Service{ID: 2, Name: "Koneajo", Price: 18, DurationMinutes: 15, IsActive: true, AddOnType: AddOnTypeHair}
	beardTrim = &Service{ID: 3, Name: "Parran muotoilu", Price: 15, DurationMinutes: 15, IsActive: true, AddOnType: AddOnTypeBeard}
	beardFull = &Service{ID: 4, Name: "Parranajo", Price: 20, DurationMinutes: 20, IsActive: true, AddOnType: AddOnTypeBeard}
	wash      = &Service{ID: 5, Name: "Hiustenpesu", Price: 10, DurationMinutes: 15, IsActive: true, AddOnType: AddOnTypeGeneral}
	kidsCut   = &Service{ID: 6, Name: "Lasten hiustenleikkaus", Price: 20, DurationMinutes: 30, IsActive: true, AddOnType: AddOnTypeKid}
	inactive  = &Service{ID: 7, Name: "Vanha palvelu", Price: 5, DurationMinutes: 10, IsActive: false, AddOnType: AddOnTypeGeneral}
)

func allServices() []*Service {
	return []*Service{haircut, machine, beardTrim, beardFull, wash, kidsCut, inactive}
}

func TestOfferableAddOns(t *testing.T) {
	t.Run("hair main offers general and beard", func(t *testing.T) {
		got := OfferableAddOns(haircut, allServices())
		assert.ElementsMatch(t, []*Service{beardTrim, beardFull, wash}, got)
	})

	t.Run("beard main offers general and hair", func(t *testing.T) {
		got := OfferableAddOns(beardTrim, allServices())
		assert.ElementsMatch(t, []*Service{haircut, machine, wash}, got)
	})

	t.Run("kid main offers general only", func(t *testing.T) {
		got := OfferableAddOns(kidsCut, allServices())
		assert.Equal(t, []*Service{wash}, got)
	})

	t.Run("main service excluded from its own add-ons", func(t *testing.T) {
		for _, svc := range OfferableAddOns(haircut, allServices()) {
			assert.NotEqual(t, haircut.ID, svc.ID)
		}
	})

	t.Run("inactive services never offered", func(t *testing.T) {
		for _, svc := range OfferableAddOns(haircut, allServices()) {
			assert.True(t, svc.IsActive)
		}
	})

	t.Run("no main service yields nothing", func(t *testing.T) {
		assert.Nil(t, OfferableAddOns(nil, allServices()))
	})
}

func TestBookingDraftSelectMainService(t *testing.T) {
	t.Run("selecting a new main clears add-ons", func(t *testing.T) {
		draft := &BookingDraft{}
		draft.SelectMainService(haircut)
		draft.ToggleAddOn(wash)
		require.Len(t, draft.AddOns, 1)

		draft.SelectMainService(beardTrim)
		assert.Equal(t, beardTrim, draft.MainService)
		assert.Empty(t, draft.AddOns)
	})

	t.Run("re-selecting the current main deselects everything", func(t *testing.T) {
		draft := &BookingDraft{}
		draft.SelectMainService(haircut)
		draft.ToggleAddOn(wash)

		draft.SelectMainService(haircut)
		assert.Nil(t, draft.MainService)
		assert.Empty(t, draft.AddOns)
	})
}

func TestBookingDraftToggleAddOn(t *testing.T) {
	t.Run("toggle twice removes", func(t *testing.T) {
		draft := &BookingDraft{MainService: haircut}
		draft.ToggleAddOn(wash)
		draft.ToggleAddOn(wash)
		assert.Empty(t, draft.AddOns)
	})

	t.Run("second hair add-on evicts the first", func(t *testing.T) {
		draft := &BookingDraft{MainService: beardFull}
		draft.ToggleAddOn(haircut)
		draft.ToggleAddOn(machine)

		require.Len(t, draft.AddOns, 1)
		assert.Equal(t, machine, draft.AddOns[0])
	})

	t.Run("second beard add-on evicts the first", func(t *testing.T) {
		draft := &BookingDraft{MainService: haircut}
		draft.ToggleAddOn(beardTrim)
		draft.ToggleAddOn(beardFull)

		require.Len(t, draft.AddOns, 1)
		assert.Equal(t, beardFull, draft.AddOns[0])
	})

	t.Run("general add-ons have no exclusivity", func(t *testing.T) {
		second := &Service{ID: 8, Name: "Hiusten muotoilu", Price: 5, DurationMinutes: 10, IsActive: true, AddOnType: AddOnTypeGeneral}
		draft := &BookingDraft{MainService: haircut}
		draft.ToggleAddOn(wash)
		draft.ToggleAddOn(second)
		assert.Len(t, draft.AddOns, 2)
	})
}

func TestBookingDraftTotals(t *testing.T) {
	draft := &BookingDraft{
		MainService: &Service{ID: 10, Price: 25, DurationMinutes: 30, IsActive: true, AddOnType: AddOnTypeHair},
	}
	draft.ToggleAddOn(&Service{ID: 11, Price: 10, DurationMinutes: 15, IsActive: true, AddOnType: AddOnTypeGeneral})

	assert.Equal(t, 45, draft.TotalDurationMinutes())
	assert.InDelta(t, 35.0, draft.TotalPrice(), 0.001)
}

func TestBookingDraftAllServices(t *testing.T) {
	draft := &BookingDraft{MainService: haircut}
	draft.ToggleAddOn(wash)
	draft.ToggleAddOn(beardTrim)

	all := draft.AllServices()
	require.Len(t, all, 3)
	assert.Equal(t, haircut, all[0], "main service comes first")
	assert.Equal(t, wash, all[1])
	assert.Equal(t, beardTrim, all[2])
}

func TestBookingDraftReset(t *testing.T) {
	draft := &BookingDraft{MainService: haircut, SelectedDate: "2026-09-07", SelectedTime: "10:00"}
	draft.Reset()
	assert.Equal(t, BookingDraft{}, *draft)
}
