package get_calendar

import (
	"context"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	storage "github.com/questarium/QST-ScheduleService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	// GetSlotLoads возвращает занятые места по слотам периода дат
	GetSlotLoads(ctx context.Context, from, to time.Time) ([]storage.SlotLoad, error)
}

// ScheduleRepository интерфейс репозитория пометок расписания
type ScheduleRepository interface {
	// GetForRange возвращает ручные пометки слотов за период дат
	GetForRange(ctx context.Context, from, to time.Time) ([]domain.SlotOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
