package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платежного сервиса
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrPaymentRejected возвращается, когда платежный сервис отклонил заявку
	ErrPaymentRejected = errors.New("payments client: payment rejected")
)
