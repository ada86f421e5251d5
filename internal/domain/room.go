package domain

import "time"

// RoomPricing rate configuration for a room
// PerPerson and PerRoom are loosely typed: historical venue exports carry them
// as JSON numbers or numeric strings, and either may be absent entirely.
// Interpretation (coercion, defaults, tie-break) belongs to internal/pricing.
type RoomPricing struct {
	PerPerson interface{} `json:"perPerson,omitempty"` // hourly rate charged per attendee
	PerRoom   interface{} `json:"perRoom,omitempty"`   // flat hourly rate for the whole room
	Rule      string      `json:"rule,omitempty"`      // "higher" | "lower", tie-break when both rates are set
}

// Room represents a bookable meeting room in the venue configuration
type Room struct {
	ID             string       `json:"id"`
	Name           string       `json:"name,omitempty"`
	Capacity       int          `json:"capacity,omitempty"`
	VATClass       string       `json:"vatClass,omitempty"` // recorded for invoicing, never applied by the pricing engine
	Pricing        *RoomPricing `json:"pricing,omitempty"`
	IncludedAddOns []string     `json:"includedAddOns,omitempty"` // bundled into the base price at no extra charge
	OptionalAddOns []string     `json:"optionalAddOns,omitempty"` // chargeable extras a booker may select

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasPricing returns true if the room carries any rate configuration at all
func (r *Room) HasPricing() bool {
	return r.Pricing != nil
}

// IncludesAddOn returns true if the add-on is bundled into the base price
func (r *Room) IncludesAddOn(addOnID string) bool {
	for _, id := range r.IncludedAddOns {
		if id == addOnID {
			return true
		}
	}
	return false
}

// OffersAddOn returns true if the add-on is offered as a chargeable extra
func (r *Room) OffersAddOn(addOnID string) bool {
	for _, id := range r.OptionalAddOns {
		if id == addOnID {
			return true
		}
	}
	return false
}
