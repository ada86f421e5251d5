package delete_addon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog"
)

const (
	msgAddOnNotFound = "add-on не найден"
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle DELETE /api/v1/add-ons/{addOnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOnID := mux.Vars(r)["addOnId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /add-ons/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteAddOn(r.Context(), addOnID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrAddOnNotFound):
			h.logger.Warn("DELETE /add-ons/{id} - Add-on not found: addon_id=%s, user_id=%s", addOnID, userID)
			handlers.RespondNotFound(w, msgAddOnNotFound)

		default:
			h.logger.Error("DELETE /add-ons/{id} - Failed to delete add-on: addon_id=%s, user_id=%s, error=%v", addOnID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /add-ons/{id} - Add-on deleted: addon_id=%s, user_id=%s", addOnID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
