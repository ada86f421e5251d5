package create_blackout

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/service/blackouts"
	blackoutModels "github.com/m04kA/MRV-PricingService/internal/service/blackouts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные blackout-периода"
	msgRoomNotFound       = "комната не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blackouts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req blackoutModels.CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blackout, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blackouts.ErrInvalidInput):
			h.logger.Warn("POST /blackouts - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blackouts.ErrRoomNotFound):
			h.logger.Warn("POST /blackouts - Room not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /blackouts - Failed to create blackout: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blackouts - Blackout created: id=%d, user_id=%s", blackout.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, blackout)
}
