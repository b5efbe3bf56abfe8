package retry_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/service/bookings"
)

const (
	msgInvalidBookingID     = "некорректный идентификатор заявки"
	msgNotFound             = "заявка не найдена"
	msgPaymentAlreadyIssued = "платежная ссылка уже выставлена"
	msgPaymentFailed        = "не удалось выставить платежную ссылку, попробуйте позже"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	booking, err := h.service.RetryPayment(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{bookingId}/payment - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId}/payment - Booking not found: booking_id=%q", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrPaymentAlreadyIssued):
			h.logger.Warn("POST /bookings/{bookingId}/payment - Payment already issued: booking_id=%q", bookingID)
			handlers.RespondConflict(w, msgPaymentAlreadyIssued)

		case errors.Is(err, bookings.ErrPaymentFailed):
			h.logger.Error("POST /bookings/{bookingId}/payment - Payment service failed: booking_id=%q", bookingID)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)

		default:
			h.logger.Error("POST /bookings/{bookingId}/payment - Failed to retry payment: booking_id=%q, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/payment - Payment link issued: booking_id=%s", booking.PublicID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
