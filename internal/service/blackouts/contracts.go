package blackouts

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// BlackoutRepository интерфейс репозитория blackout-периодов
type BlackoutRepository interface {
	Create(ctx context.Context, blackout *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
	List(ctx context.Context) ([]*domain.BlackoutPeriod, error)
	ListForDate(ctx context.Context, roomID string, date types.DateString) ([]*domain.BlackoutPeriod, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
// Нужен только для проверки существования комнаты при создании периода
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
