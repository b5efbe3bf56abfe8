package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/questarium/QST-ScheduleService/pkg/types"
)

// BookingStatus статус заявки на игру
type BookingStatus string

const (
	// StatusPendingPayment бронь создана, платежная ссылка еще не выпущена
	// Промежуточный статус саги: позволяет повторить выпуск ссылки,
	// не создавая бронь заново
	StatusPendingPayment BookingStatus = "pending_payment"

	// StatusAwaitingPayment платежная ссылка выпущена, ждем оплату предоплаты
	StatusAwaitingPayment BookingStatus = "awaiting_payment"

	StatusConfirmed       BookingStatus = "confirmed"
	StatusCompleted       BookingStatus = "completed"
	StatusCancelledByUser BookingStatus = "cancelled_by_user"
	StatusCancelledByClub BookingStatus = "cancelled_by_club"
	StatusNoShow          BookingStatus = "no_show"
)

// ContactChannel канал связи для подтверждения брони
type ContactChannel string

const (
	ChannelPhone    ContactChannel = "phone"
	ChannelTelegram ContactChannel = "telegram"
	ChannelEmail    ContactChannel = "email"
)

// IsValid проверяет, что канал связи известен
func (c ContactChannel) IsValid() bool {
	return c == ChannelPhone || c == ChannelTelegram || c == ChannelEmail
}

// Booking заявка на игру в слоте
type Booking struct {
	ID       int64
	PublicID uuid.UUID

	// Привязка к слоту
	SlotDate        time.Time
	Period          Period
	StartTime       types.TimeString
	DurationMinutes int

	// Параметры игры
	AdventureID          *string // nil, если сюжет подбирает клуб
	AdventureTitle       *string // денормализация для истории
	NeedsStorySuggestion bool
	Tier                 Tier
	Players              int

	// Контакты
	UserID         *int64 // заполняется для залогиненных пользователей
	Name           string
	ContactChannel ContactChannel
	Contact        string
	Email          *string
	Comment        *string

	// Снимок цены на момент брони
	PricePerPlayer int
	TotalPrice     int

	Status     BookingStatus
	PaymentURL *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotID возвращает идентификатор слота брони
func (b *Booking) SlotID() string {
	return SlotID{
		Year:   b.SlotDate.Year(),
		Month:  b.SlotDate.Month(),
		Day:    b.SlotDate.Day(),
		Period: b.Period,
	}.String()
}

// IsActive возвращает true, если бронь занимает места в слоте
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByClub &&
		b.Status != StatusNoShow
}

// CanBeCancelled возвращает true, если бронь можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment ||
		b.Status == StatusAwaitingPayment ||
		b.Status == StatusConfirmed
}

// AwaitsPaymentLink возвращает true, если по брони можно повторить выпуск платежной ссылки
func (b *Booking) AwaitsPaymentLink() bool {
	return b.Status == StatusPendingPayment
}

// IsCancelled возвращает true, если бронь отменена
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByClub
}
