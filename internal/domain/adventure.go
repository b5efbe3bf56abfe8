package domain

// PlayerRange диапазон количества игроков сюжета
type PlayerRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Adventure сюжет из каталога приключений
// Каноническая форма записи: исторические алиасы полей каталога приводятся
// к ней один раз на границе с контент-сервисом, ядро фильтрации о них не знает
type Adventure struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Logline     string `json:"logline,omitempty"`

	// Таксономия для фасетного фильтра
	BaseSettings []string `json:"baseSettings,omitempty"`
	Subsetting   string   `json:"subsetting,omitempty"`
	Tones        []string `json:"tones,omitempty"`
	Focus        string   `json:"focus,omitempty"`
	World        string   `json:"world,omitempty"`

	// Поля для карточки и формы брони
	DurationMinutes    int          `json:"durationMinutes,omitempty"`
	Players            *PlayerRange `json:"players,omitempty"`
	PriceLabel         string       `json:"priceLabel,omitempty"`
	Tags               []string     `json:"tags,omitempty"`
	IsBeginnerFriendly bool         `json:"isBeginnerFriendly,omitempty"`
	AgeRating          string       `json:"ageRating,omitempty"`
}
