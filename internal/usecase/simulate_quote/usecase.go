package simulate_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/internal/pricing"
	"github.com/m04kA/MRV-PricingService/pkg/money"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// UseCase use case симуляции расчета цены
// Административная витрина: та же раскладка, что и у публичного превью,
// плюс полный список опциональных add-on'ов комнаты для перебора вариантов.
// Побочных эффектов нет - симуляция ничего не бронирует и не сохраняет
type UseCase struct {
	configSource   ConfigSource
	blackoutSource BlackoutSource
	currencySymbol string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// blackoutSource может быть nil - тогда предупреждения о blackout не выдаются
func NewUseCase(
	configSource ConfigSource,
	blackoutSource BlackoutSource,
	currencySymbol string,
	logger Logger,
) *UseCase {
	return &UseCase{
		configSource:   configSource,
		blackoutSource: blackoutSource,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

// Execute выполняет симуляцию расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SimulateQuote: user=%s, room=%s, attendees=%d, duration=%dh, selected=%d",
		req.UserID, req.RoomID, req.Attendees, req.DurationHours, len(req.SelectedAddOnIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SimulateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату из источника конфигурации
	room, err := uc.configSource.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			uc.logger.Warn("SimulateQuote: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SimulateQuote: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Получаем каталог add-on'ов
	addOns, err := uc.configSource.ListAddOns(ctx)
	if err != nil {
		uc.logger.Error("SimulateQuote: failed to list add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to list add-ons: %v", ErrInternal, err)
	}
	addOnsByID := domain.AddOnsByID(addOns)

	// 4. Считаем раскладку
	breakdown := pricing.ComputeBreakdown(room, addOnsByID, pricing.Context{
		Attendees:                float64(req.Attendees),
		DurationHours:            float64(req.DurationHours),
		SelectedOptionalAddOnIDs: req.SelectedAddOnIDs,
	})

	resp := uc.buildResponse(room, breakdown)

	// 5. Полный список опций комнаты с ценами для текущих параметров
	resp.AvailableOptions = uc.buildAvailableOptions(room, addOnsByID, req)

	// 6. Предупреждение о blackout: чисто информационное, расчет не блокирует
	if req.EventDate != "" {
		uc.applyBlackoutWarning(ctx, req.RoomID, types.DateString(req.EventDate), resp)
	}

	uc.logger.Info("SimulateQuote: room=%s final price=%.4f", req.RoomID, resp.FinalPrice)
	return resp, nil
}

// buildResponse собирает ответ из вычисленной раскладки
func (uc *UseCase) buildResponse(room *domain.Room, b *pricing.Breakdown) *Response {
	return &Response{
		RoomID:   room.ID,
		RoomName: room.Name,

		RoomBasePerHour: b.RoomBasePerHour,
		BaseRule:        b.BaseRule,

		RoomBaseTotal:    b.RoomBaseTotal,
		InclusiveTotal:   b.InclusiveTotal,
		BundlePrice:      b.BundlePrice,
		OfferPrice:       b.OfferPrice,
		OptionalTotal:    b.OptionalTotal,
		ProvisionalPrice: b.ProvisionalPrice,
		FinalPrice:       b.FinalPrice,

		RoomBaseTotalFormatted:    money.Format(uc.currencySymbol, b.RoomBaseTotal),
		BundlePriceFormatted:      money.Format(uc.currencySymbol, b.BundlePrice),
		OfferPriceFormatted:       money.Format(uc.currencySymbol, b.OfferPrice),
		ProvisionalPriceFormatted: money.Format(uc.currencySymbol, b.ProvisionalPrice),
		FinalPriceFormatted:       money.Format(uc.currencySymbol, b.FinalPrice),

		IncludedItems: uc.convertLineItems(b.IncludedItems),
		OptionalItems: uc.convertLineItems(b.OptionalItems),
	}
}

// buildAvailableOptions считает цену каждого опционального add-on'а комнаты
// для текущих параметров, включая невыбранные. ID без записи в каталоге
// отбрасываются, как и в самой раскладке
func (uc *UseCase) buildAvailableOptions(
	room *domain.Room,
	addOnsByID map[string]*domain.AddOn,
	req *Request,
) []AvailableOption {
	selected := make(map[string]struct{}, len(req.SelectedAddOnIDs))
	for _, id := range req.SelectedAddOnIDs {
		selected[id] = struct{}{}
	}

	options := make([]AvailableOption, 0, len(room.OptionalAddOns))
	for _, id := range room.OptionalAddOns {
		addOn, ok := addOnsByID[id]
		if !ok || addOn == nil {
			continue
		}

		resolved := pricing.ResolveAddOnPricing(addOn)
		value := pricing.ValueForAddOn(resolved, float64(req.Attendees), float64(req.DurationHours))

		_, isSelected := selected[id]
		options = append(options, AvailableOption{
			LineItem: LineItem{
				AddOnID:        addOn.ID,
				Name:           addOn.Name,
				Model:          resolved.Model,
				Unit:           resolved.Unit,
				UnitAmount:     resolved.Amount,
				Value:          value.Value,
				ValueFormatted: money.Format(uc.currencySymbol, value.Value),
				Supported:      value.Supported,
			},
			Selected: isSelected,
		})
	}

	return options
}

// convertLineItems конвертирует строки раскладки в DTO с форматированием сумм
func (uc *UseCase) convertLineItems(items []pricing.LineItem) []LineItem {
	result := make([]LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, LineItem{
			AddOnID:        item.AddOnID,
			Name:           item.Name,
			Model:          item.Model,
			Unit:           item.Unit,
			UnitAmount:     item.UnitAmount,
			Value:          item.Value,
			ValueFormatted: money.Format(uc.currencySymbol, item.Value),
			Supported:      item.Supported,
		})
	}
	return result
}

// applyBlackoutWarning проставляет предупреждение, если дата события закрыта
// Ошибка источника не валит расчет - предупреждение лишь не выдается
func (uc *UseCase) applyBlackoutWarning(ctx context.Context, roomID string, date types.DateString, resp *Response) {
	if uc.blackoutSource == nil {
		return
	}

	blackouts, err := uc.blackoutSource.ListForDate(ctx, roomID, date)
	if err != nil {
		uc.logger.Warn("SimulateQuote: failed to check blackouts for room=%s, date=%s: %v", roomID, date, err)
		return
	}

	if len(blackouts) == 0 {
		return
	}

	resp.BlackoutWarning = true
	for _, blackout := range blackouts {
		if blackout.Reason != "" {
			resp.BlackoutReasons = append(resp.BlackoutReasons, blackout.Reason)
		}
	}
}
