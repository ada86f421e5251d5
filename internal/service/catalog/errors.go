package catalog

import (
	"errors"

	"github.com/m04kA/MRV-PricingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	// Алиас доменной ошибки: сервис реализует ConfigSource quote use case'ов,
	// и те матчат доменный sentinel независимо от источника конфигурации
	ErrRoomNotFound = domain.ErrRoomNotFound

	// ErrAddOnNotFound возвращается, когда add-on не найден
	ErrAddOnNotFound = domain.ErrAddOnNotFound

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
