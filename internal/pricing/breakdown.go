package pricing

import (
	"time"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// Context ephemeral booking parameters for one computation
// Never persisted; StartTime is carried for the views (blackout warnings)
// and does not influence the computed price
type Context struct {
	Attendees                float64
	DurationHours            float64
	StartTime                *time.Time
	SelectedOptionalAddOnIDs []string
}

// LineItem per-add-on detail of a computed breakdown
type LineItem struct {
	AddOnID    string
	Name       string
	Model      string
	Unit       string
	UnitAmount float64
	Value      float64
	Supported  bool
}

// Breakdown five-stage price breakdown of a proposed booking
//
// Invariants:
//
//	BundlePrice      = RoomBaseTotal + InclusiveTotal
//	OfferPrice       = BundlePrice
//	ProvisionalPrice = OfferPrice + OptionalTotal
//	FinalPrice       = ProvisionalPrice
//
// Равенства Offer/Bundle и Final/Provisional - текущее продуктовое правило;
// логика финализации сверх этого сознательно отложена
type Breakdown struct {
	RoomBasePerHour  float64
	BaseRule         string
	RoomBaseTotal    float64
	InclusiveTotal   float64
	BundlePrice      float64
	OfferPrice       float64
	OptionalTotal    float64
	ProvisionalPrice float64
	FinalPrice       float64

	IncludedItems []LineItem
	OptionalItems []LineItem
}

// ComputeBreakdown вычисляет полную раскладку цены бронирования
//
// ID, отсутствующие в каталоге, молча отбрасываются: каталог и привязка
// add-on'ов к комнатам редактируются независимо и могут временно разъехаться.
// Функция чистая и идемпотентная - каждый числовой путь имеет определенный
// fallback, поэтому для любого корректно сформированного входа всегда
// возвращается полная раскладка
func ComputeBreakdown(room *domain.Room, addOnsByID map[string]*domain.AddOn, ctx Context) *Breakdown {
	attendees := finiteOrZero(ctx.Attendees)
	durationHours := finiteOrZero(ctx.DurationHours)

	// 1-3. Базовая цена комнаты: тариф за час и итог за бронирование
	base := RoomBaseForHour(room, attendees)
	roomBaseTotal := base.PerHour * durationHours

	var includedIDs, optionalIDs []string
	if room != nil {
		includedIDs = room.IncludedAddOns
		optionalIDs = room.OptionalAddOns
	}

	// 4. Включенные add-on'ы
	includedItems, inclusiveTotal := computeLineItems(includedIDs, addOnsByID, attendees, durationHours, nil)

	// 5. Bundle = база + включенные; Offer = Bundle
	bundlePrice := roomBaseTotal + inclusiveTotal
	offerPrice := bundlePrice

	// 6. Выбранные опциональные add-on'ы
	selected := make(map[string]struct{}, len(ctx.SelectedOptionalAddOnIDs))
	for _, id := range ctx.SelectedOptionalAddOnIDs {
		selected[id] = struct{}{}
	}
	optionalItems, optionalTotal := computeLineItems(optionalIDs, addOnsByID, attendees, durationHours, selected)

	// 7. Provisional = Offer + опциональные; Final = Provisional
	provisionalPrice := offerPrice + optionalTotal
	finalPrice := provisionalPrice

	return &Breakdown{
		RoomBasePerHour:  base.PerHour,
		BaseRule:         base.Rule,
		RoomBaseTotal:    roomBaseTotal,
		InclusiveTotal:   inclusiveTotal,
		BundlePrice:      bundlePrice,
		OfferPrice:       offerPrice,
		OptionalTotal:    optionalTotal,
		ProvisionalPrice: provisionalPrice,
		FinalPrice:       finalPrice,
		IncludedItems:    includedItems,
		OptionalItems:    optionalItems,
	}
}

// computeLineItems вычисляет строки раскладки для списка ID add-on'ов
// filter != nil оставляет только ID из filter (выбранные опциональные);
// ID без записи в каталоге отбрасываются
func computeLineItems(
	ids []string,
	addOnsByID map[string]*domain.AddOn,
	attendees, durationHours float64,
	filter map[string]struct{},
) ([]LineItem, float64) {
	items := make([]LineItem, 0, len(ids))
	var total float64

	for _, id := range ids {
		if filter != nil {
			if _, ok := filter[id]; !ok {
				continue
			}
		}

		addOn, ok := addOnsByID[id]
		if !ok || addOn == nil {
			continue
		}

		resolved := ResolveAddOnPricing(addOn)
		value := ValueForAddOn(resolved, attendees, durationHours)

		items = append(items, LineItem{
			AddOnID:    addOn.ID,
			Name:       addOn.Name,
			Model:      resolved.Model,
			Unit:       resolved.Unit,
			UnitAmount: resolved.Amount,
			Value:      value.Value,
			Supported:  value.Supported,
		})
		total += value.Value
	}

	return items, total
}
