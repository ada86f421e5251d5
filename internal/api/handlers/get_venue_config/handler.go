package get_venue_config

import (
	"net/http"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
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

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.GetVenueConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to get venue config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, config)
}
