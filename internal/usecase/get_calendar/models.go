package get_calendar

import "github.com/questarium/QST-ScheduleService/internal/domain"

// AvailabilityAvailable значение фильтра, скрывающего занятые слоты
const AvailabilityAvailable = "available"

// Request модель запроса месяца календаря
type Request struct {
	// Month месяц в формате YYYY-MM. Пустая строка - текущий месяц.
	// Месяц за пределами окна записи тихо приводится к ближайшей границе
	Month string

	// Availability фильтр доступности ("available" - скрыть занятые слоты)
	Availability string
}

// Response модель ответа с месяцем календаря
type Response struct {
	Month         string   // месяц в формате YYYY-MM
	Title         string   // подпись месяца ("СЕНТЯБРЬ 2026")
	HasPrev       bool     // можно ли листать назад
	HasNext       bool     // можно ли листать вперед
	DaysOfWeek    []string // подписи дней недели, неделя с понедельника
	LeadingBlanks int      // пустые клетки до первого дня месяца
	Days          []Day    // дни месяца по порядку
}

// Day день месяца со слотами
type Day struct {
	Day   int           // число месяца
	Date  string        // дата в формате YYYY-MM-DD
	Slots []domain.Slot // слоты дня (день, вечер)
}
