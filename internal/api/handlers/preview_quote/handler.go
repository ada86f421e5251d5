package preview_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	previewQuote "github.com/m04kA/MRV-PricingService/internal/usecase/preview_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase PreviewQuoteUseCase
	logger  Logger
}

func NewHandler(useCase PreviewQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, previewQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes/preview - Invalid input: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, previewQuote.ErrRoomNotFound):
			h.logger.Warn("POST /quotes/preview - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /quotes/preview - Failed to compute quote: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
