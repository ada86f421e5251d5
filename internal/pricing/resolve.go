package pricing

import "github.com/m04kA/MRV-PricingService/internal/domain"

// ResolvedPricing canonical {model, amount, unit} triple of an add-on
// Model and Unit are upper-case; unresolved values are empty strings
type ResolvedPricing struct {
	Model  string
	Amount float64
	Unit   string
}

// ResolveAddOnPricing нормализует разношерстную запись каталога в каноническую
// тройку {model, amount, unit}
//
// Порядок разрешения: сначала каноническое вложенное поле pricing.*, затем
// legacy-алиасы в фиксированном порядке:
//
//	model:  pricing.model -> pricingModel
//	amount: pricing.amount -> amount -> price -> value
//	unit:   pricing.unit -> unit -> periodUnit
//
// Числа проходят через безопасную коэрсию (нечисловое -> 0), функция чистая
// и никогда не возвращает ошибку
func ResolveAddOnPricing(addOn *domain.AddOn) ResolvedPricing {
	if addOn == nil {
		return ResolvedPricing{}
	}

	var model, amount, unit interface{}
	if addOn.Pricing != nil {
		model = addOn.Pricing.Model
		amount = addOn.Pricing.Amount
		unit = addOn.Pricing.Unit
	}

	if model == nil {
		model = addOn.PricingModel
	}
	if amount == nil {
		amount = firstNonNil(addOn.Amount, addOn.Price, addOn.Value)
	}
	if unit == nil {
		unit = firstNonNil(addOn.Unit, addOn.PeriodUnit)
	}

	return ResolvedPricing{
		Model:  toUpperString(model),
		Amount: toNumber(amount),
		Unit:   toUpperString(unit),
	}
}

func firstNonNil(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
