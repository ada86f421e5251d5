package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// testCatalogue собирает каталог, используемый сквозными сценариями
func testCatalogue() map[string]*domain.AddOn {
	return domain.AddOnsByID([]*domain.AddOn{
		{
			ID:      "wifi",
			Name:    "Wi-Fi",
			Pricing: &domain.AddOnPricing{Model: "PER_PERSON", Amount: 5.0},
		},
		{
			ID:      "projector",
			Name:    "Projector",
			Pricing: &domain.AddOnPricing{Model: "PER_PERIOD", Amount: 15.0, Unit: "HOUR"},
		},
		{
			ID:      "catering",
			Name:    "Full day catering",
			Pricing: &domain.AddOnPricing{Model: "PER_PERIOD", Amount: 50.0, Unit: "DAY"},
		},
		{
			ID:      "whiteboard",
			Name:    "Whiteboard",
			Pricing: &domain.AddOnPricing{Model: "PER_EVENT", Amount: 10.0},
		},
	})
}

func standardRoom() *domain.Room {
	return &domain.Room{
		ID:   "boardroom",
		Name: "Boardroom",
		Pricing: &domain.RoomPricing{
			PerPerson: 20.0,
			PerRoom:   100.0,
			Rule:      "higher",
		},
		IncludedAddOns: []string{"wifi"},
		OptionalAddOns: []string{"projector", "catering", "whiteboard"},
	}
}

// Сквозной сценарий: комната {perPerson: 20, perRoom: 100, rule: higher},
// 10 участников, 2 часа, включенный PER_PERSON add-on и выбранный
// PER_PERIOD/HOUR add-on
func TestComputeBreakdown_FullScenario(t *testing.T) {
	bd := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:                10,
		DurationHours:            2,
		SelectedOptionalAddOnIDs: []string{"projector"},
	})

	assert.Equal(t, 200.0, bd.RoomBasePerHour) // max(10x20, 100)
	assert.Equal(t, domain.RuleHigher, bd.BaseRule)
	assert.Equal(t, 400.0, bd.RoomBaseTotal) // 200 x 2h
	assert.Equal(t, 50.0, bd.InclusiveTotal) // wifi: 5 x 10
	assert.Equal(t, 450.0, bd.BundlePrice)
	assert.Equal(t, 450.0, bd.OfferPrice)
	assert.Equal(t, 30.0, bd.OptionalTotal) // projector: 15 x 2h
	assert.Equal(t, 480.0, bd.ProvisionalPrice)
	assert.Equal(t, 480.0, bd.FinalPrice)

	require.Len(t, bd.IncludedItems, 1)
	assert.Equal(t, "wifi", bd.IncludedItems[0].AddOnID)
	assert.True(t, bd.IncludedItems[0].Supported)

	require.Len(t, bd.OptionalItems, 1)
	assert.Equal(t, "projector", bd.OptionalItems[0].AddOnID)
	assert.Equal(t, 15.0, bd.OptionalItems[0].UnitAmount)
}

func TestComputeBreakdown_LowerRule(t *testing.T) {
	room := standardRoom()
	room.Pricing.Rule = "lower"

	bd := ComputeBreakdown(room, testCatalogue(), Context{Attendees: 10, DurationHours: 2})

	assert.Equal(t, 100.0, bd.RoomBasePerHour) // min(200, 100)
	assert.Equal(t, 200.0, bd.RoomBaseTotal)
}

// Неподдерживаемый PER_PERIOD/DAY add-on дает нулевой вклад и флаг
// supported=false, его amount не влияет на цену
func TestComputeBreakdown_UnsupportedSelectionDoesNotChangePrice(t *testing.T) {
	withoutCatering := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:                10,
		DurationHours:            2,
		SelectedOptionalAddOnIDs: []string{"projector"},
	})
	withCatering := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:                10,
		DurationHours:            2,
		SelectedOptionalAddOnIDs: []string{"projector", "catering"},
	})

	assert.Equal(t, withoutCatering.ProvisionalPrice, withCatering.ProvisionalPrice)
	assert.Equal(t, withoutCatering.FinalPrice, withCatering.FinalPrice)

	require.Len(t, withCatering.OptionalItems, 2)
	var cateringItem *LineItem
	for i := range withCatering.OptionalItems {
		if withCatering.OptionalItems[i].AddOnID == "catering" {
			cateringItem = &withCatering.OptionalItems[i]
		}
	}
	require.NotNil(t, cateringItem)
	assert.Equal(t, 0.0, cateringItem.Value)
	assert.False(t, cateringItem.Supported)
	// Цена за единицу остается видимой для UI
	assert.Equal(t, 50.0, cateringItem.UnitAmount)
}

func TestComputeBreakdown_Additivity(t *testing.T) {
	contexts := []Context{
		{Attendees: 1, DurationHours: 1},
		{Attendees: 10, DurationHours: 2, SelectedOptionalAddOnIDs: []string{"projector"}},
		{Attendees: 0, DurationHours: 12, SelectedOptionalAddOnIDs: []string{"projector", "whiteboard"}},
		{Attendees: 250, DurationHours: 8, SelectedOptionalAddOnIDs: []string{"whiteboard", "catering"}},
	}

	for _, ctx := range contexts {
		bd := ComputeBreakdown(standardRoom(), testCatalogue(), ctx)

		assert.Equal(t, bd.RoomBaseTotal+bd.InclusiveTotal, bd.BundlePrice)
		assert.Equal(t, bd.BundlePrice, bd.OfferPrice)
		assert.Equal(t, bd.OfferPrice+bd.OptionalTotal, bd.ProvisionalPrice)
		assert.Equal(t, bd.ProvisionalPrice, bd.FinalPrice)
	}
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	ctx := Context{
		Attendees:                10,
		DurationHours:            3,
		SelectedOptionalAddOnIDs: []string{"projector", "whiteboard"},
	}

	first := ComputeBreakdown(standardRoom(), testCatalogue(), ctx)
	second := ComputeBreakdown(standardRoom(), testCatalogue(), ctx)

	assert.Equal(t, first, second)
}

// ID без записи в каталоге молча отбрасываются - каталог и привязка
// add-on'ов редактируются независимо и могут временно разъехаться
func TestComputeBreakdown_MissingCatalogueIDsDropped(t *testing.T) {
	room := standardRoom()
	room.IncludedAddOns = []string{"wifi", "ghost-addon"}
	room.OptionalAddOns = []string{"projector", "deleted-addon"}

	bd := ComputeBreakdown(room, testCatalogue(), Context{
		Attendees:                10,
		DurationHours:            2,
		SelectedOptionalAddOnIDs: []string{"projector", "deleted-addon"},
	})

	assert.Len(t, bd.IncludedItems, 1)
	assert.Len(t, bd.OptionalItems, 1)
	assert.Equal(t, 50.0, bd.InclusiveTotal)
	assert.Equal(t, 30.0, bd.OptionalTotal)
}

func TestComputeBreakdown_UnselectedOptionalsExcluded(t *testing.T) {
	bd := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:     10,
		DurationHours: 2,
		// Ничего не выбрано
	})

	assert.Empty(t, bd.OptionalItems)
	assert.Equal(t, 0.0, bd.OptionalTotal)
	assert.Equal(t, bd.OfferPrice, bd.FinalPrice)
}

// Выбор ID, которого нет среди optionalAddOns комнаты, игнорируется:
// фильтр применяется к списку комнаты, а не наоборот
func TestComputeBreakdown_SelectionOutsideRoomOptionsIgnored(t *testing.T) {
	bd := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:                10,
		DurationHours:            2,
		SelectedOptionalAddOnIDs: []string{"wifi"}, // included, не optional
	})

	assert.Empty(t, bd.OptionalItems)
	assert.Equal(t, 0.0, bd.OptionalTotal)
}

// Комната вообще без pricing: полная нулевая раскладка вместо ошибки
func TestComputeBreakdown_RoomWithoutPricing(t *testing.T) {
	room := &domain.Room{ID: "bare"}

	bd := ComputeBreakdown(room, testCatalogue(), Context{Attendees: 5, DurationHours: 2})

	require.NotNil(t, bd)
	assert.Equal(t, 0.0, bd.RoomBasePerHour)
	assert.Equal(t, 0.0, bd.RoomBaseTotal)
	assert.Equal(t, 0.0, bd.FinalPrice)
	assert.Equal(t, domain.RuleNone, bd.BaseRule)
	assert.NotNil(t, bd.IncludedItems)
	assert.NotNil(t, bd.OptionalItems)
}

func TestComputeBreakdown_NilRoomAndCatalogue(t *testing.T) {
	bd := ComputeBreakdown(nil, nil, Context{Attendees: 5, DurationHours: 2})

	require.NotNil(t, bd)
	assert.Equal(t, 0.0, bd.FinalPrice)
}

func TestComputeBreakdown_NonFiniteContextValues(t *testing.T) {
	bd := ComputeBreakdown(standardRoom(), testCatalogue(), Context{
		Attendees:     math.NaN(),
		DurationHours: math.Inf(1),
	})

	require.NotNil(t, bd)
	// NaN участники -> 0, Inf длительность -> 0: вся раскладка нулевая,
	// кроме per-room составляющей, которая тоже умножается на 0 часов
	assert.Equal(t, 100.0, bd.RoomBasePerHour) // max(0x20, 100)
	assert.Equal(t, 0.0, bd.RoomBaseTotal)
	assert.Equal(t, 0.0, bd.FinalPrice)
}
