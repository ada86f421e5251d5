package blackouts

import "errors"

var (
	// ErrBlackoutNotFound возвращается, когда blackout-период не найден
	ErrBlackoutNotFound = errors.New("blackout period not found")

	// ErrRoomNotFound возвращается, когда комната периода не существует
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
