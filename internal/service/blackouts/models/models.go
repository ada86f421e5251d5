package models

import (
	"time"

	"github.com/m04kA/MRV-PricingService/internal/domain"
	"github.com/m04kA/MRV-PricingService/pkg/types"
)

// CreateBlackoutRequest запрос на создание blackout-периода
// RoomID = nil закрывает всю площадку
type CreateBlackoutRequest struct {
	RoomID    *string `json:"roomId,omitempty"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    string  `json:"reason,omitempty"`
}

// ToDomainBlackout конвертирует запрос в domain модель
// Даты должны быть провалидированы до вызова
func (r *CreateBlackoutRequest) ToDomainBlackout() *domain.BlackoutPeriod {
	return &domain.BlackoutPeriod{
		RoomID:    r.RoomID,
		StartDate: types.DateString(r.StartDate),
		EndDate:   types.DateString(r.EndDate),
		Reason:    r.Reason,
	}
}

// BlackoutResponse ответ с данными blackout-периода
type BlackoutResponse struct {
	ID        int64     `json:"id"`
	RoomID    *string   `json:"roomId,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBlackout конвертирует domain модель в DTO
func FromDomainBlackout(blackout *domain.BlackoutPeriod) *BlackoutResponse {
	if blackout == nil {
		return nil
	}
	return &BlackoutResponse{
		ID:        blackout.ID,
		RoomID:    blackout.RoomID,
		StartDate: blackout.StartDate.String(),
		EndDate:   blackout.EndDate.String(),
		Reason:    blackout.Reason,
		CreatedAt: blackout.CreatedAt,
	}
}

// BlackoutListResponse ответ со списком blackout-периодов
type BlackoutListResponse struct {
	Blackouts []*BlackoutResponse `json:"blackouts"`
}

// FromDomainBlackoutList конвертирует список domain моделей в DTO
func FromDomainBlackoutList(blackouts []*domain.BlackoutPeriod) *BlackoutListResponse {
	resp := &BlackoutListResponse{Blackouts: make([]*BlackoutResponse, 0, len(blackouts))}
	for _, blackout := range blackouts {
		resp.Blackouts = append(resp.Blackouts, FromDomainBlackout(blackout))
	}
	return resp
}
