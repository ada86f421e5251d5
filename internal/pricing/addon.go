package pricing

import "github.com/m04kA/MRV-PricingService/internal/domain"

// AddOnValue monetary contribution of a single add-on to a quote
//
// Supported is an explicit product policy, not an inference: a legitimately
// priced add-on can also be exactly zero, so the UI must disclose
// "not supported in this computation" from the flag, never from the value
type AddOnValue struct {
	Value     float64
	Supported bool
}

// ValueForAddOn вычисляет денежный вклад add-on'а в бронирование
//
//	PER_EVENT:              amount
//	PER_PERSON:             amount x attendees
//	PER_PERIOD (unit HOUR): amount x durationHours
//
// PER_PERIOD с любым другим unit, PER_UNIT и нераспознанные модели дают
// {0, not supported} независимо от amount. Отрицательные входы не
// ограничиваются - за неотрицательность отвечает вызывающая сторона
func ValueForAddOn(pricing ResolvedPricing, attendees, durationHours float64) AddOnValue {
	attendees = finiteOrZero(attendees)
	durationHours = finiteOrZero(durationHours)

	switch pricing.Model {
	case domain.ModelPerEvent:
		return AddOnValue{Value: pricing.Amount, Supported: true}

	case domain.ModelPerPerson:
		return AddOnValue{Value: pricing.Amount * attendees, Supported: true}

	case domain.ModelPerPeriod:
		if pricing.Unit == domain.UnitHour {
			return AddOnValue{Value: pricing.Amount * durationHours, Supported: true}
		}
		// DAY, MINUTE и прочие единицы - валидные данные каталога,
		// но этот движок их не считает
		return AddOnValue{}

	default:
		// PER_UNIT, пустая или нераспознанная модель
		return AddOnValue{}
	}
}
