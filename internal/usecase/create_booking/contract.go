package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	// Create создает новую заявку
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// CountPlayersBySlot считает занятые места в слоте по активным заявкам
	// Внутри транзакции блокирует строки заявок слота
	CountPlayersBySlot(ctx context.Context, date time.Time, period domain.Period) (int, error)

	// SetPaymentIssued переводит заявку в ожидание оплаты и сохраняет ссылку
	SetPaymentIssued(ctx context.Context, id int64, paymentURL string) error
}

// ScheduleRepository интерфейс репозитория пометок расписания
type ScheduleRepository interface {
	// GetForSlot возвращает пометку конкретного слота, если она есть
	GetForSlot(ctx context.Context, date time.Time, period domain.Period) (*domain.SlotOverride, error)
}

// CatalogClient интерфейс клиента каталога приключений
type CatalogClient interface {
	GetAdventureWithGracefulDegradation(ctx context.Context, adventureID string) (*domain.Adventure, error)
}

// PaymentsClient интерфейс платежного клиента
type PaymentsClient interface {
	CreatePayment(ctx context.Context, request payments.CreatePaymentRequest) (string, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDProvider интерфейс для генерации публичных идентификаторов (для тестирования)
type IDProvider interface {
	NewID() uuid.UUID
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDProvider реальный генератор публичных идентификаторов
type UUIDProvider struct{}

// NewID возвращает новый случайный идентификатор
func (p *UUIDProvider) NewID() uuid.UUID {
	return uuid.New()
}
