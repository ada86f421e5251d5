package upsert_addon

import (
	"context"

	"github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

type CatalogService interface {
	UpsertAddOn(ctx context.Context, addOnID string, req *models.UpsertAddOnRequest) (*models.AddOnResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
