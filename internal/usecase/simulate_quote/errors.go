package simulate_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена в конфигурации
	ErrRoomNotFound = errors.New("simulate_quote: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("simulate_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("simulate_quote: internal error")
)
