package configprovider

import "github.com/m04kA/MRV-PricingService/internal/domain"

// VenueConfig документ конфигурации площадки от внешнего Config Provider
//
// Оба массива могут отсутствовать (трактуются как пустые), неизвестные поля
// на любом уровне игнорируются
type VenueConfig struct {
	Rooms  []*domain.Room  `json:"rooms"`
	AddOns []*domain.AddOn `json:"addOns"`
}

// ErrorResponse модель ошибки от Config Provider
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
