package get_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/service/catalog"
	catalogModels "github.com/m04kA/MRV-PricingService/internal/service/catalog/models"
)

const (
	msgRoomNotFound = "комната не найдена"
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

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	room, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, catalogModels.FromDomainRoom(room))
}
