package simulate_quote

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// ConfigSource источник конфигурации площадки
// Реализуется сервисом каталога (локальная база) или клиентом внешнего
// Config Provider'а - расчет цены от источника не зависит
type ConfigSource interface {
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	ListAddOns(ctx context.Context) ([]*domain.AddOn, error)
}

// BlackoutSource источник blackout-периодов
// Может отсутствовать (nil), если площадка работает от внешней конфигурации
type BlackoutSource interface {
	ListForDate(ctx context.Context, roomID string, date types.DateString) ([]*domain.BlackoutPeriod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
