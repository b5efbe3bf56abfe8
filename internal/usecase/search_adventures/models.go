package search_adventures

import "github.com/questarium/QST-ScheduleService/internal/domain"

// Сообщения о конфликте базовых и конкретных сеттингов
const (
	MsgAllSubsDropped  = "Конкретные сеттинги сброшены из-за конфликта с базовыми сеттингами"
	MsgSomeSubsDropped = "Некоторые конкретные сеттинги сброшены из-за конфликта"
)

// Request модель запроса фасетного поиска сюжетов
type Request struct {
	// Filters выбранные значения по шагам фильтра
	Filters map[string][]string

	// Query строка текстового поиска
	Query string

	// ChangedStep шаг, который только что изменился
	// От него зависит направление согласования иерархии сеттингов
	ChangedStep string
}

// Response модель ответа фасетного поиска
type Response struct {
	// Filters выбранные значения после согласования иерархии
	Filters map[string][]string

	// ConflictMessage сообщение о сброшенных конкретных сеттингах
	ConflictMessage string

	// Adventures сюжеты, прошедшие фильтры и текстовый поиск
	Adventures []domain.Adventure

	// Steps шаги фильтра с доступными опциями
	Steps []Step
}

// Step шаг фильтра с опциями, доступными при текущем выборе
type Step struct {
	ID          string
	Label       string
	Description string
	Options     []string
}

// stepMeta подписи шагов фильтра
var stepMeta = map[string][2]string{
	domain.StepBaseSetting: {"Базовый сеттинг", "Базовый сеттинг"},
	domain.StepSubsetting:  {"Конкретный сеттинг", "Конкретный сеттинг"},
	domain.StepTone:        {"Тональность", "Атмосфера"},
	domain.StepFocus:       {"Фокус игры", "Жанр"},
	domain.StepWorld:       {"Выбери вселенную", "Игровая вселенная"},
}
