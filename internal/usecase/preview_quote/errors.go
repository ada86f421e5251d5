package preview_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена в конфигурации
	ErrRoomNotFound = errors.New("preview_quote: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_quote: internal error")
)
