package get_venue_config

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetVenueConfig(ctx context.Context) (*models.VenueConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
