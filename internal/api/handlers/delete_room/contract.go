package delete_room

import "context"

type CatalogService interface {
	DeleteRoom(ctx context.Context, roomID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
