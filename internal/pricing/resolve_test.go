package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

func TestResolveAddOnPricing_CanonicalNestedFields(t *testing.T) {
	addOn := &domain.AddOn{
		ID: "flipchart",
		Pricing: &domain.AddOnPricing{
			Model:  "per_event",
			Amount: 25.0,
			Unit:   "hour",
		},
	}

	resolved := ResolveAddOnPricing(addOn)

	assert.Equal(t, "PER_EVENT", resolved.Model)
	assert.Equal(t, 25.0, resolved.Amount)
	assert.Equal(t, "HOUR", resolved.Unit)
}

func TestResolveAddOnPricing_LegacyAliases(t *testing.T) {
	tests := []struct {
		name  string
		addOn *domain.AddOn
		want  ResolvedPricing
	}{
		{
			name: "flat legacy fields",
			addOn: &domain.AddOn{
				PricingModel: "per_person",
				Price:        "12.50",
				PeriodUnit:   "hour",
			},
			want: ResolvedPricing{Model: "PER_PERSON", Amount: 12.5, Unit: "HOUR"},
		},
		{
			name: "amount beats price and value",
			addOn: &domain.AddOn{
				PricingModel: "PER_EVENT",
				Amount:       10.0,
				Price:        20.0,
				Value:        30.0,
			},
			want: ResolvedPricing{Model: "PER_EVENT", Amount: 10},
		},
		{
			name: "price beats value",
			addOn: &domain.AddOn{
				PricingModel: "PER_EVENT",
				Price:        20.0,
				Value:        30.0,
			},
			want: ResolvedPricing{Model: "PER_EVENT", Amount: 20},
		},
		{
			name: "value as last amount fallback",
			addOn: &domain.AddOn{
				PricingModel: "PER_EVENT",
				Value:        30.0,
			},
			want: ResolvedPricing{Model: "PER_EVENT", Amount: 30},
		},
		{
			name: "unit beats periodUnit",
			addOn: &domain.AddOn{
				PricingModel: "PER_PERIOD",
				Amount:       5.0,
				Unit:         "hour",
				PeriodUnit:   "day",
			},
			want: ResolvedPricing{Model: "PER_PERIOD", Amount: 5, Unit: "HOUR"},
		},
		{
			name: "canonical nested block beats every alias",
			addOn: &domain.AddOn{
				Pricing: &domain.AddOnPricing{
					Model:  "PER_PERIOD",
					Amount: 15.0,
					Unit:   "HOUR",
				},
				PricingModel: "PER_EVENT",
				Amount:       999.0,
				PeriodUnit:   "DAY",
			},
			want: ResolvedPricing{Model: "PER_PERIOD", Amount: 15, Unit: "HOUR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAddOnPricing(tt.addOn))
		})
	}
}

func TestResolveAddOnPricing_UnresolvedDefaults(t *testing.T) {
	resolved := ResolveAddOnPricing(&domain.AddOn{ID: "bare"})

	assert.Equal(t, "", resolved.Model)
	assert.Equal(t, 0.0, resolved.Amount)
	assert.Equal(t, "", resolved.Unit)
}

func TestResolveAddOnPricing_NilAddOn(t *testing.T) {
	assert.Equal(t, ResolvedPricing{}, ResolveAddOnPricing(nil))
}

func TestResolveAddOnPricing_MalformedAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount interface{}
		want   float64
	}{
		{"numeric string", "42.5", 42.5},
		{"string with spaces", "  7 ", 7},
		{"non-numeric string", "abc", 0},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"bool", true, 0},
		{"object", map[string]interface{}{"x": 1}, 0},
		{"json number", json.Number("3.25"), 3.25},
		{"malformed json number", json.Number("3.2.5"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addOn := &domain.AddOn{
				Pricing: &domain.AddOnPricing{Model: "PER_EVENT", Amount: tt.amount},
			}
			assert.Equal(t, tt.want, ResolveAddOnPricing(addOn).Amount)
		})
	}
}

func TestResolveAddOnPricing_SurvivesJSONRoundTrip(t *testing.T) {
	// Записи приходят из JSON-документа конфигурации; числа там float64,
	// а legacy-поля могут быть строками
	raw := `{
		"id": "projector",
		"name": "Projector",
		"pricingModel": "per_period",
		"price": "40",
		"periodUnit": "Hour",
		"someUnknownField": {"nested": true}
	}`

	var addOn domain.AddOn
	require.NoError(t, json.Unmarshal([]byte(raw), &addOn))

	resolved := ResolveAddOnPricing(&addOn)
	assert.Equal(t, ResolvedPricing{Model: "PER_PERIOD", Amount: 40, Unit: "HOUR"}, resolved)
}
