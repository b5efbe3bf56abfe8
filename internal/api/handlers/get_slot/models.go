package get_slot

import (
	"github.com/questarium/QST-ScheduleService/internal/domain"
	openSlot "github.com/questarium/QST-ScheduleService/internal/usecase/open_slot"
)

// SlotResponse слот с карточкой брони
type SlotResponse struct {
	ID              string `json:"id"`
	DateLabel       string `json:"dateLabel"`
	TimeLabel       string `json:"timeLabel"`
	TimeStart       string `json:"timeStart"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	MaxPlayers      int    `json:"maxPlayers"`
	Remaining       int    `json:"remaining"`
	MinPlayers      int    `json:"minPlayers"`
}

// PricingResponse расчет цены для черновика
type PricingResponse struct {
	PricePerPlayer int `json:"pricePerPlayer"`
	TotalPrice     int `json:"totalPrice"`
}

// OpenSlotResponse HTTP response model
// Для занятого слота черновик и прайсинг отсутствуют, выставлено уведомление.
// Для нераспознанной ссылки слот отсутствует целиком - панель брони закрыта
type OpenSlotResponse struct {
	Slot       *SlotResponse        `json:"slot,omitempty"`
	Notice     string               `json:"notice,omitempty"`
	Draft      *domain.BookingDraft `json:"draft,omitempty"`
	Adventures []domain.Adventure   `json:"adventures"`
	Pricing    *PricingResponse     `json:"pricing,omitempty"`
}

// EmptyResponse ответ для нераспознанной ссылки на слот
func EmptyResponse() *OpenSlotResponse {
	return &OpenSlotResponse{Adventures: []domain.Adventure{}}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *openSlot.Response) *OpenSlotResponse {
	out := &OpenSlotResponse{
		Slot: &SlotResponse{
			ID:              resp.Slot.ID,
			DateLabel:       resp.Slot.DateLabel,
			TimeLabel:       resp.Slot.TimeLabel,
			TimeStart:       resp.Slot.TimeStart.String(),
			DurationMinutes: resp.Slot.DurationMinutes,
			Status:          string(resp.Slot.Status),
			MaxPlayers:      resp.Slot.MaxPlayers,
			Remaining:       resp.Slot.Remaining,
			MinPlayers:      resp.Slot.MinPlayers,
		},
		Notice:     resp.Notice,
		Draft:      resp.Draft,
		Adventures: resp.Adventures,
	}

	if resp.Pricing != nil {
		out.Pricing = &PricingResponse{
			PricePerPlayer: resp.Pricing.PricePerPlayer,
			TotalPrice:     resp.Pricing.TotalPrice,
		}
	}

	if out.Adventures == nil {
		out.Adventures = []domain.Adventure{}
	}

	return out
}
