package preview_quote

import (
	previewQuote "github.com/m04kA/MRV-PricingService/internal/usecase/preview_quote"
)

// PreviewQuoteRequest HTTP модель запроса предварительного расчета цены
type PreviewQuoteRequest struct {
	RoomID           string   `json:"roomId"`
	Attendees        int      `json:"attendees"`
	DurationHours    int      `json:"durationHours"`
	EventDate        string   `json:"eventDate,omitempty"`
	SelectedAddOnIDs []string `json:"selectedAddOnIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewQuoteRequest) ToUseCaseRequest() *previewQuote.Request {
	return &previewQuote.Request{
		RoomID:           r.RoomID,
		Attendees:        r.Attendees,
		DurationHours:    r.DurationHours,
		EventDate:        r.EventDate,
		SelectedAddOnIDs: r.SelectedAddOnIDs,
	}
}
