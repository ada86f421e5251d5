package get_room

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

type CatalogService interface {
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
