package catalog

import (
	"context"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// CatalogClient интерфейс клиента каталога приключений
type CatalogClient interface {
	ListAdventuresWithGracefulDegradation(ctx context.Context) ([]domain.Adventure, error)
	GetAdventureWithGracefulDegradation(ctx context.Context, adventureID string) (*domain.Adventure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
