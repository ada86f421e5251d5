package models

import (
	"time"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

// Request модели

// UpsertRoomRequest запрос на создание/обновление комнаты
type UpsertRoomRequest struct {
	Name           string              `json:"name"`
	Capacity       int                 `json:"capacity"`
	VATClass       string              `json:"vatClass,omitempty"`
	Pricing        *domain.RoomPricing `json:"pricing,omitempty"`
	IncludedAddOns []string            `json:"includedAddOns,omitempty"`
	OptionalAddOns []string            `json:"optionalAddOns,omitempty"`
}

// ToDomainRoom конвертирует запрос в domain модель
func (r *UpsertRoomRequest) ToDomainRoom(id string) *domain.Room {
	return &domain.Room{
		ID:             id,
		Name:           r.Name,
		Capacity:       r.Capacity,
		VATClass:       r.VATClass,
		Pricing:        r.Pricing,
		IncludedAddOns: r.IncludedAddOns,
		OptionalAddOns: r.OptionalAddOns,
	}
}

// UpsertAddOnRequest запрос на создание/обновление записи каталога
// Ценовые поля слабо типизированы: запись может прийти и в каноническом,
// и в legacy-виде - каталог хранит ее как есть
type UpsertAddOnRequest struct {
	Name     string               `json:"name"`
	Category string               `json:"category,omitempty"`
	VATClass string               `json:"vatClass,omitempty"`
	Pricing  *domain.AddOnPricing `json:"pricing,omitempty"`

	PricingModel interface{} `json:"pricingModel,omitempty"`
	Amount       interface{} `json:"amount,omitempty"`
	Price        interface{} `json:"price,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	Unit         interface{} `json:"unit,omitempty"`
	PeriodUnit   interface{} `json:"periodUnit,omitempty"`
}

// ToDomainAddOn конвертирует запрос в domain модель
func (r *UpsertAddOnRequest) ToDomainAddOn(id string) *domain.AddOn {
	return &domain.AddOn{
		ID:           id,
		Name:         r.Name,
		Category:     r.Category,
		VATClass:     r.VATClass,
		Pricing:      r.Pricing,
		PricingModel: r.PricingModel,
		Amount:       r.Amount,
		Price:        r.Price,
		Value:        r.Value,
		Unit:         r.Unit,
		PeriodUnit:   r.PeriodUnit,
	}
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	*domain.Room
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		Room:      room,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]*RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, FromDomainRoom(room))
	}
	return resp
}

// AddOnResponse ответ с записью каталога
type AddOnResponse struct {
	*domain.AddOn
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainAddOn конвертирует domain модель в DTO
func FromDomainAddOn(addOn *domain.AddOn) *AddOnResponse {
	if addOn == nil {
		return nil
	}
	return &AddOnResponse{
		AddOn:     addOn,
		CreatedAt: addOn.CreatedAt,
		UpdatedAt: addOn.UpdatedAt,
	}
}

// AddOnListResponse ответ со списком записей каталога
type AddOnListResponse struct {
	AddOns []*AddOnResponse `json:"addOns"`
}

// FromDomainAddOnList конвертирует список domain моделей в DTO
func FromDomainAddOnList(addOns []*domain.AddOn) *AddOnListResponse {
	resp := &AddOnListResponse{AddOns: make([]*AddOnResponse, 0, len(addOns))}
	for _, addOn := range addOns {
		resp.AddOns = append(resp.AddOns, FromDomainAddOn(addOn))
	}
	return resp
}

// VenueConfigResponse документ конфигурации площадки
// Это выходной контракт GET /config: {rooms, addOns}
type VenueConfigResponse struct {
	Rooms  []*domain.Room  `json:"rooms"`
	AddOns []*domain.AddOn `json:"addOns"`
}
