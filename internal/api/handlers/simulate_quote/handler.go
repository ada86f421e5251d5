package simulate_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRV-PricingService/internal/api/handlers"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	simulateQuote "github.com/m04kA/MRV-PricingService/internal/usecase/simulate_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета"
	msgRoomNotFound       = "комната не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase SimulateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase SimulateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/simulate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /quotes/simulate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SimulateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/simulate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, simulateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes/simulate - Invalid input: room_id=%s, user_id=%s, error=%v", req.RoomID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, simulateQuote.ErrRoomNotFound):
			h.logger.Warn("POST /quotes/simulate - Room not found: room_id=%s, user_id=%s", req.RoomID, userID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /quotes/simulate - Failed to simulate quote: room_id=%s, user_id=%s, error=%v", req.RoomID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
