package preview_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/internal/pricing"
	"github.com/m04kA/MRV-PricingService/pkg/money"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// UseCase use case предварительного расчета цены бронирования
// Публичная витрина: принимает параметры бронирования и возвращает
// полную раскладку цены без каких-либо побочных эффектов
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

// Execute выполняет расчет цены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewQuote: room=%s, attendees=%d, duration=%dh, selected=%d",
		req.RoomID, req.Attendees, req.DurationHours, len(req.SelectedAddOnIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PreviewQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату из источника конфигурации
	room, err := uc.configSource.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			uc.logger.Warn("PreviewQuote: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("PreviewQuote: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Получаем каталог add-on'ов
	addOns, err := uc.configSource.ListAddOns(ctx)
	if err != nil {
		uc.logger.Error("PreviewQuote: failed to list add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to list add-ons: %v", ErrInternal, err)
	}

	// 4. Считаем раскладку
	breakdown := pricing.ComputeBreakdown(room, domain.AddOnsByID(addOns), pricing.Context{
		Attendees:                float64(req.Attendees),
		DurationHours:            float64(req.DurationHours),
		SelectedOptionalAddOnIDs: req.SelectedAddOnIDs,
	})

	resp := uc.buildResponse(room, breakdown)

	// 5. Предупреждение о blackout: чисто информационное, расчет не блокирует
	if req.EventDate != "" {
		uc.applyBlackoutWarning(ctx, req.RoomID, types.DateString(req.EventDate), resp)
	}

	uc.logger.Info("PreviewQuote: room=%s final price=%.4f", req.RoomID, resp.FinalPrice)
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
		uc.logger.Warn("PreviewQuote: failed to check blackouts for room=%s, date=%s: %v", roomID, date, err)
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
