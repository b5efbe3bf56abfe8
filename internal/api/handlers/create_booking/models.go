package create_booking

import (
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	createBooking "github.com/questarium/QST-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID         string `json:"slotId"` // "2026-09-15-evening"
	AdventureID    string `json:"adventureId"`
	Tier           string `json:"tier"`
	Players        int    `json:"players"`
	Name           string `json:"name"`
	ContactChannel string `json:"contactChannel"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Comment        string `json:"comment"`
	Agree          bool   `json:"agree"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	SlotID    string `json:"slotId"`
	Status    string `json:"status"`

	AdventureID          *string `json:"adventureId,omitempty"`
	AdventureTitle       *string `json:"adventureTitle,omitempty"`
	NeedsStorySuggestion bool    `json:"needsStorySuggestion"`

	Tier           string `json:"tier"`
	Players        int    `json:"players"`
	PricePerPlayer int    `json:"pricePerPlayer"`
	TotalPrice     int    `json:"totalPrice"`

	PaymentURL *string `json:"paymentUrl,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ValidationErrorResponse тело ошибки валидации формы с ошибками полей
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) *createBooking.Request {
	return &createBooking.Request{
		SlotID:         r.SlotID,
		AdventureID:    r.AdventureID,
		Tier:           r.Tier,
		Players:        r.Players,
		Name:           r.Name,
		ContactChannel: r.ContactChannel,
		Contact:        r.Contact,
		Email:          r.Email,
		Comment:        r.Comment,
		Agree:          r.Agree,
		UserID:         userID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:            resp.PublicID,
		SlotID:               resp.SlotID,
		Status:               resp.Status,
		AdventureID:          resp.AdventureID,
		AdventureTitle:       resp.AdventureTitle,
		NeedsStorySuggestion: resp.NeedsStorySuggestion,
		Tier:                 resp.Tier,
		Players:              resp.Players,
		PricePerPlayer:       resp.PricePerPlayer,
		TotalPrice:           resp.TotalPrice,
		PaymentURL:           resp.PaymentURL,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
