package simulate_quote

import (
	simulateQuote "github.com/m04kA/MRV-PricingService/internal/usecase/simulate_quote"
)

// SimulateQuoteRequest HTTP модель запроса симуляции расчета цены
type SimulateQuoteRequest struct {
	RoomID           string   `json:"roomId"`
	Attendees        int      `json:"attendees"`
	DurationHours    int      `json:"durationHours"`
	EventDate        string   `json:"eventDate,omitempty"`
	SelectedAddOnIDs []string `json:"selectedAddOnIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SimulateQuoteRequest) ToUseCaseRequest(userID string) *simulateQuote.Request {
	return &simulateQuote.Request{
		UserID:           userID,
		RoomID:           r.RoomID,
		Attendees:        r.Attendees,
		DurationHours:    r.DurationHours,
		EventDate:        r.EventDate,
		SelectedAddOnIDs: r.SelectedAddOnIDs,
	}
}
