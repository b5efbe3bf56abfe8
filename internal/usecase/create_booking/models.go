package create_booking

import "time"

// Request модель запроса на создание заявки
type Request struct {
	SlotID string

	AdventureID    string
	Tier           string
	Players        int
	Name           string
	ContactChannel string
	Contact        string
	Email          string
	Comment        string
	Agree          bool

	// UserID заполняется для залогиненных пользователей
	UserID *int64
}

// Response модель ответа с созданной заявкой
type Response struct {
	PublicID string
	SlotID   string
	Status   string

	AdventureID          *string
	AdventureTitle       *string
	NeedsStorySuggestion bool

	Tier           string
	Players        int
	PricePerPlayer int
	TotalPrice     int

	// PaymentURL пустой, если выпуск платежной ссылки не удался.
	// Заявка при этом создана и ссылку можно перевыставить
	PaymentURL *string

	CreatedAt time.Time
}
