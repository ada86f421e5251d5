package configprovider

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("configprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("configprovider client: invalid response")

	// ErrUnavailable возвращается, когда провайдер недоступен
	ErrUnavailable = errors.New("configprovider client: provider unavailable")
)
