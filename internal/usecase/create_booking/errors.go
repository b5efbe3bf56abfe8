package create_booking

import (
	"errors"
	"fmt"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

var (
	// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
	ErrInvalidSlotID = errors.New("create_booking: invalid slot id")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrDraftInvalid возвращается, когда черновик не проходит валидацию
	ErrDraftInvalid = errors.New("create_booking: draft is invalid")

	// ErrAdventureNotFound возвращается, когда выбранный сюжет не существует
	ErrAdventureNotFound = errors.New("create_booking: adventure not found")

	// ErrSlotNotAvailable возвращается, когда слот занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrNotEnoughSeats возвращается, когда мест меньше, чем игроков в заявке
	ErrNotEnoughSeats = errors.New("create_booking: not enough seats left")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации черновика с ошибками полей
type ValidationError struct {
	Fields []domain.FieldError
}

// Error возвращает строковое представление ошибки
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d field(s)", ErrDraftInvalid, len(e.Fields))
}

// Is поддерживает errors.Is(err, ErrDraftInvalid)
func (e *ValidationError) Is(target error) bool {
	return target == ErrDraftInvalid
}
