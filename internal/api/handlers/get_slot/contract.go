package get_slot

import (
	"context"

	openSlot "github.com/questarium/QST-ScheduleService/internal/usecase/open_slot"
)

type OpenSlotUseCase interface {
	Execute(ctx context.Context, req *openSlot.Request) (*openSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
