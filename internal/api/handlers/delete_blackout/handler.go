package delete_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/service/blackouts"
)

const (
	msgInvalidBlackoutID = "некорректный ID blackout-периода"
	msgBlackoutNotFound  = "blackout-период не найден"
	msgMissingUserID     = "отсутствует ID пользователя"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blackouts/{blackoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blackoutID, err := strconv.ParseInt(mux.Vars(r)["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blackouts/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blackouts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), blackoutID); err != nil {
		switch {
		case errors.Is(err, blackouts.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /blackouts/{id} - Blackout not found: id=%d, user_id=%s", blackoutID, userID)
			handlers.RespondNotFound(w, msgBlackoutNotFound)

		default:
			h.logger.Error("DELETE /blackouts/{id} - Failed to delete blackout: id=%d, user_id=%s, error=%v", blackoutID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blackouts/{id} - Blackout deleted: id=%d, user_id=%s", blackoutID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
