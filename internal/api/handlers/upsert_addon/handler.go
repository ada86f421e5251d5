package upsert_addon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog"
	catalogModels "github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные add-on"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle PUT /api/v1/add-ons/{addOnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOnID := mux.Vars(r)["addOnId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /add-ons/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req catalogModels.UpsertAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /add-ons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	addOn, err := h.service.UpsertAddOn(r.Context(), addOnID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /add-ons/{id} - Invalid input: addon_id=%s, user_id=%s, error=%v", addOnID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /add-ons/{id} - Failed to upsert add-on: addon_id=%s, user_id=%s, error=%v", addOnID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /add-ons/{id} - Add-on upserted: addon_id=%s, user_id=%s", addOnID, userID)
	handlers.RespondJSON(w, http.StatusOK, addOn)
}
