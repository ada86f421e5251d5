package preview_quote

import (
	"fmt"
	"strings"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Ограничение длительности 1-12 часов - соглашение витрин; движок цен
// сам по себе считает для любой длительности
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.Attendees < 0 {
		return fmt.Errorf("%w: attendees must not be negative", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.EventDate != "" {
		if _, err := types.NewDateStringFromString(req.EventDate); err != nil {
			return fmt.Errorf("%w: eventDate must be in YYYY-MM-DD format", ErrInvalidInput)
		}
	}

	return nil
}
