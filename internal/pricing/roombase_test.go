package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

func roomWithPricing(perPerson, perRoom interface{}, rule string) *domain.Room {
	return &domain.Room{
		ID: "boardroom",
		Pricing: &domain.RoomPricing{
			PerPerson: perPerson,
			PerRoom:   perRoom,
			Rule:      rule,
		},
	}
}

func TestRoomBaseForHour_TieBreak(t *testing.T) {
	tests := []struct {
		name      string
		room      *domain.Room
		attendees float64
		wantPrice float64
		wantRule  string
	}{
		{
			name:      "rule higher picks max",
			room:      roomWithPricing(20.0, 100.0, "higher"),
			attendees: 10,
			wantPrice: 200, // max(10x20, 100)
			wantRule:  domain.RuleHigher,
		},
		{
			name:      "rule lower picks min",
			room:      roomWithPricing(20.0, 100.0, "lower"),
			attendees: 10,
			wantPrice: 100, // min(10x20, 100)
			wantRule:  domain.RuleLower,
		},
		{
			name:      "unset rule defaults to higher",
			room:      roomWithPricing(20.0, 100.0, ""),
			attendees: 10,
			wantPrice: 200,
			wantRule:  domain.RuleHigher,
		},
		{
			name:      "rule is case-insensitive",
			room:      roomWithPricing(20.0, 100.0, "LOWER"),
			attendees: 10,
			wantPrice: 100,
			wantRule:  domain.RuleLower,
		},
		{
			name:      "higher picks per-room when few attendees",
			room:      roomWithPricing(20.0, 100.0, "higher"),
			attendees: 2,
			wantPrice: 100, // max(2x20, 100)
			wantRule:  domain.RuleHigher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoomBaseForHour(tt.room, tt.attendees)
			assert.Equal(t, tt.wantPrice, got.PerHour)
			assert.Equal(t, tt.wantRule, got.Rule)
		})
	}
}

func TestRoomBaseForHour_SingleRateFallback(t *testing.T) {
	tests := []struct {
		name      string
		room      *domain.Room
		attendees float64
		wantPrice float64
		wantRule  string
	}{
		{
			name:      "only per-person configured",
			room:      roomWithPricing(20.0, nil, ""),
			attendees: 10,
			wantPrice: 200,
			wantRule:  domain.RulePerPerson,
		},
		{
			name:      "only per-room configured",
			room:      roomWithPricing(nil, 150.0, ""),
			attendees: 10,
			wantPrice: 150,
			wantRule:  domain.RulePerRoom,
		},
		{
			name:      "zero rates treated as unconfigured",
			room:      roomWithPricing(0.0, 0.0, "lower"),
			attendees: 10,
			wantPrice: 0,
			wantRule:  domain.RuleNone,
		},
		{
			name:      "negative per-room treated as unconfigured",
			room:      roomWithPricing(20.0, -50.0, "lower"),
			attendees: 10,
			wantPrice: 200,
			wantRule:  domain.RulePerPerson,
		},
		{
			name:      "no pricing object at all",
			room:      &domain.Room{ID: "bare"},
			attendees: 5,
			wantPrice: 0,
			wantRule:  domain.RuleNone,
		},
		{
			name:      "nil room",
			room:      nil,
			attendees: 5,
			wantPrice: 0,
			wantRule:  domain.RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoomBaseForHour(tt.room, tt.attendees)
			assert.Equal(t, tt.wantPrice, got.PerHour)
			assert.Equal(t, tt.wantRule, got.Rule)
		})
	}
}

func TestRoomBaseForHour_LooseNumericShapes(t *testing.T) {
	// Ставки из старых экспортов приходят строками
	got := RoomBaseForHour(roomWithPricing("20", "100", "higher"), 10)
	assert.Equal(t, 200.0, got.PerHour)

	// Мусор в ставке эквивалентен отсутствию ставки
	got = RoomBaseForHour(roomWithPricing("garbage", 100.0, "higher"), 10)
	assert.Equal(t, 100.0, got.PerHour)
	assert.Equal(t, domain.RulePerRoom, got.Rule)
}

func TestRoomBaseForHour_ZeroAttendees(t *testing.T) {
	// 0 участников: per-person итог равен 0, tie-break выбирает per-room при "higher"
	got := RoomBaseForHour(roomWithPricing(20.0, 100.0, "higher"), 0)
	assert.Equal(t, 100.0, got.PerHour)
}
