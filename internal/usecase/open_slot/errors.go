package open_slot

import "errors"

var (
	// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
	ErrInvalidSlotID = errors.New("invalid slot id")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
