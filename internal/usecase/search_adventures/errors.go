package search_adventures

import "errors"

var (
	// ErrUnknownStep возвращается при неизвестном шаге фильтра
	ErrUnknownStep = errors.New("unknown filter step")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
