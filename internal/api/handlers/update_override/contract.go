package update_override

import (
	"context"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

type ScheduleRepository interface {
	Upsert(ctx context.Context, override domain.SlotOverride) error
	Delete(ctx context.Context, date time.Time, period domain.Period) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
