package retry_payment

import (
	"context"

	"github.com/questarium/QST-ScheduleService/internal/service/bookings/models"
)

type BookingService interface {
	RetryPayment(ctx context.Context, bookingID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
