package list_addons

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

type CatalogService interface {
	ListAddOns(ctx context.Context) ([]*domain.AddOn, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
