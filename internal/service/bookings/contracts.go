package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	// GetByPublicID получает заявку по публичному идентификатору
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Booking, error)

	// SetPaymentIssued переводит заявку в ожидание оплаты и сохраняет ссылку
	SetPaymentIssued(ctx context.Context, id int64, paymentURL string) error

	// Cancel отменяет заявку с указанием причины
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// PaymentsClient интерфейс платежного клиента
type PaymentsClient interface {
	CreatePayment(ctx context.Context, request payments.CreatePaymentRequest) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
