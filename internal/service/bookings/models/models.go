package models

import (
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену заявки
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	PublicID string `json:"bookingId"`
	SlotID   string `json:"slotId"`

	SlotDate        string `json:"slotDate"`  // "2026-09-15"
	Period          string `json:"period"`    // "daytime" / "evening"
	StartTime       string `json:"startTime"` // "19:00"
	DurationMinutes int    `json:"durationMinutes"`

	AdventureID          *string `json:"adventureId,omitempty"`
	AdventureTitle       *string `json:"adventureTitle,omitempty"`
	NeedsStorySuggestion bool    `json:"needsStorySuggestion"`

	Tier           string `json:"tier"`
	Players        int    `json:"players"`
	PricePerPlayer int    `json:"pricePerPlayer"`
	TotalPrice     int    `json:"totalPrice"`

	Name           string  `json:"name"`
	ContactChannel string  `json:"contactChannel"`
	Contact        string  `json:"contact"`
	Email          *string `json:"email,omitempty"`
	Comment        *string `json:"comment,omitempty"`

	Status     string  `json:"status"`
	PaymentURL *string `json:"paymentUrl,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain заявку в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		PublicID:             booking.PublicID.String(),
		SlotID:               booking.SlotID(),
		SlotDate:             booking.SlotDate.Format(domain.DateFormat),
		Period:               string(booking.Period),
		StartTime:            booking.StartTime.String(),
		DurationMinutes:      booking.DurationMinutes,
		AdventureID:          booking.AdventureID,
		AdventureTitle:       booking.AdventureTitle,
		NeedsStorySuggestion: booking.NeedsStorySuggestion,
		Tier:                 string(booking.Tier),
		Players:              booking.Players,
		PricePerPlayer:       booking.PricePerPlayer,
		TotalPrice:           booking.TotalPrice,
		Name:                 booking.Name,
		ContactChannel:       string(booking.ContactChannel),
		Contact:              booking.Contact,
		Email:                booking.Email,
		Comment:              booking.Comment,
		Status:               string(booking.Status),
		PaymentURL:           booking.PaymentURL,
		CancellationReason:   booking.CancellationReason,
		CancelledAt:          booking.CancelledAt,
		CreatedAt:            booking.CreatedAt,
		UpdatedAt:            booking.UpdatedAt,
	}
}
