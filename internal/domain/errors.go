package domain

import "errors"

// Ошибки уровня домена
// Возвращаются любым источником конфигурации (локальное хранилище или
// внешний Config Provider), чтобы use case'ы не зависели от реализации
var (
	// ErrRoomNotFound возвращается, когда комната не найдена в конфигурации
	ErrRoomNotFound = errors.New("room not found")

	// ErrAddOnNotFound возвращается, когда add-on не найден в каталоге
	ErrAddOnNotFound = errors.New("add-on not found")
)
