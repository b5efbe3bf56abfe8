package catalog

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда сюжет с таким id не существует
	ErrAdventureNotFound = errors.New("adventure not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("catalog client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что каталог недоступен и кешированного снимка тоже нет
	ErrServiceDegraded = errors.New("catalog unavailable: graceful degradation applied")

	// ErrCacheMiss возвращается кешем при отсутствии снимка каталога
	ErrCacheMiss = errors.New("catalog cache: snapshot not found")
)
