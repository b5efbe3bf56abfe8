package open_slot

import "github.com/questarium/QST-ScheduleService/internal/domain"

// NoticeSlotTaken уведомление для слота, который уже занят
const NoticeSlotTaken = "Этот слот уже занят."

// Request модель запроса на открытие слота
type Request struct {
	SlotID string

	// Контекст навигации: предвыбранные тариф и сюжет из query параметров
	Tier        string
	AdventureID string
}

// Response модель ответа с карточкой слота
// Для занятого слота черновик не создается - только уведомление
type Response struct {
	Slot       domain.Slot
	Notice     string
	Draft      *domain.BookingDraft
	Adventures []domain.Adventure
	Pricing    *Pricing
}

// Pricing расчет цены для черновика
type Pricing struct {
	PricePerPlayer int
	TotalPrice     int
}
