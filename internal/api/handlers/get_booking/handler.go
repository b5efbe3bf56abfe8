package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор заявки"
	msgNotFound         = "заявка не найдена"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	booking, err := h.service.GetByPublicID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{bookingId} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: booking_id=%q", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: booking_id=%q, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId} - Booking retrieved: booking_id=%s, status=%s",
		booking.PublicID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
