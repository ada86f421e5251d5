package upsert_room

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

type CatalogService interface {
	UpsertRoom(ctx context.Context, roomID string, req *models.UpsertRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
