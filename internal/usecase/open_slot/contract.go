package open_slot

import (
	"context"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	// CountPlayersBySlot считает занятые места в слоте по активным заявкам
	CountPlayersBySlot(ctx context.Context, date time.Time, period domain.Period) (int, error)
}

// ScheduleRepository интерфейс репозитория пометок расписания
type ScheduleRepository interface {
	// GetForSlot возвращает пометку конкретного слота, если она есть
	GetForSlot(ctx context.Context, date time.Time, period domain.Period) (*domain.SlotOverride, error)
}

// CatalogClient интерфейс клиента каталога приключений
type CatalogClient interface {
	ListAdventuresWithGracefulDegradation(ctx context.Context) ([]domain.Adventure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
