package catalog

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Upsert(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	Delete(ctx context.Context, id string) error
}

// AddOnRepository интерфейс репозитория каталога add-on'ов
type AddOnRepository interface {
	Upsert(ctx context.Context, addOn *domain.AddOn) (*domain.AddOn, error)
	GetByID(ctx context.Context, id string) (*domain.AddOn, error)
	List(ctx context.Context) ([]*domain.AddOn, error)
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс менеджера транзакций
// Комната и ее привязки add-on'ов пишутся несколькими запросами,
// поэтому upsert выполняется в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
