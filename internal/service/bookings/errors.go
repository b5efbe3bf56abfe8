package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCannotCancel возвращается, когда заявку нельзя отменить
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrPaymentAlreadyIssued возвращается при повторном выпуске ссылки
	// для заявки, у которой ссылка уже есть
	ErrPaymentAlreadyIssued = errors.New("bookings: payment link already issued")

	// ErrPaymentFailed возвращается, когда платежный сервис не выпустил ссылку
	ErrPaymentFailed = errors.New("bookings: failed to issue payment link")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
