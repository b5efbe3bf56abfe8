package list_adventures

import (
	"context"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

type CatalogService interface {
	ListAdventures(ctx context.Context) ([]domain.Adventure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
