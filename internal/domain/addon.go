package domain

import "time"

// AddOnPricing canonical nested pricing block of a catalogue record
// Fields are loosely typed: model and unit may arrive in any case, amount as
// a JSON number or a numeric string. Normalization belongs to internal/pricing.
type AddOnPricing struct {
	Model  interface{} `json:"model,omitempty"`  // PER_EVENT | PER_PERSON | PER_PERIOD | PER_UNIT
	Amount interface{} `json:"amount,omitempty"` // unit price
	Unit   interface{} `json:"unit,omitempty"`   // required for PER_PERIOD, e.g. HOUR
}

// AddOn represents a catalogue add-on (AV equipment, labour, catering, ...)
//
// Pricing fields may live under the nested Pricing block or under the flat
// legacy aliases below - older venue exports used several field-naming
// schemes. pricing.ResolveAddOnPricing maps any accepted shape to the one
// canonical triple; the rest of the engine never reads these fields directly.
type AddOn struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Category string        `json:"category,omitempty"`
	VATClass string        `json:"vatClass,omitempty"` // recorded for invoicing, never applied by the pricing engine
	Pricing  *AddOnPricing `json:"pricing,omitempty"`

	// Legacy flat aliases, resolved in fixed fallback order
	PricingModel interface{} `json:"pricingModel,omitempty"`
	Amount       interface{} `json:"amount,omitempty"`
	Price        interface{} `json:"price,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	Unit         interface{} `json:"unit,omitempty"`
	PeriodUnit   interface{} `json:"periodUnit,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AddOnsByID индексирует список add-on'ов по ID
// Последняя запись с дублирующимся ID выигрывает (каталог не должен содержать дубли)
func AddOnsByID(addOns []*AddOn) map[string]*AddOn {
	index := make(map[string]*AddOn, len(addOns))
	for _, addOn := range addOns {
		if addOn == nil || addOn.ID == "" {
			continue
		}
		index[addOn.ID] = addOn
	}
	return index
}
