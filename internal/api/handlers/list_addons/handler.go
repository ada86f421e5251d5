package list_addons

import (
	"net/http"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	catalogModels "github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/add-ons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.ListAddOns(r.Context())
	if err != nil {
		h.logger.Error("GET /add-ons - Failed to list add-ons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, catalogModels.FromDomainAddOnList(addOns))
}
