package domain

import (
	"time"

	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// BlackoutPeriod закрытый для бронирования период
// RoomID = nil означает, что закрыта вся площадка
type BlackoutPeriod struct {
	ID        int64
	RoomID    *string
	StartDate types.DateString
	EndDate   types.DateString
	Reason    string
	CreatedAt time.Time
}

// Covers returns true if the given date falls inside the period (inclusive)
func (b *BlackoutPeriod) Covers(date types.DateString) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}

// AppliesToRoom returns true if the period blocks the given room
func (b *BlackoutPeriod) AppliesToRoom(roomID string) bool {
	return b.RoomID == nil || *b.RoomID == roomID
}
