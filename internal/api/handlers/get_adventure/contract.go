package get_adventure

import (
	"context"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

type CatalogService interface {
	GetAdventureByID(ctx context.Context, adventureID string) (*domain.Adventure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
