package delete_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog"
)

const (
	msgRoomNotFound  = "комната не найдена"
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

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%s, user_id=%s", roomID, userID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%s, user_id=%s, error=%v", roomID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: room_id=%s, user_id=%s", roomID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
