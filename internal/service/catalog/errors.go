package catalog

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда сюжет не найден
	ErrAdventureNotFound = errors.New("catalog: adventure not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
