package search_adventures

import (
	"context"

	searchAdventures "github.com/questarium/QST-ScheduleService/internal/usecase/search_adventures"
)

type SearchAdventuresUseCase interface {
	Execute(ctx context.Context, req *searchAdventures.Request) (*searchAdventures.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
