package payments

// CreatePaymentRequest запрос на выставление ссылки на оплату
type CreatePaymentRequest struct {
	BookingID   string `json:"bookingId"`
	AmountRub   int    `json:"amountRub"`
	Description string `json:"description,omitempty"`
}

// CreatePaymentResponse ответ платежного сервиса
type CreatePaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// ErrorResponse модель ошибки от платежного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
