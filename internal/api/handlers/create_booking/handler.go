package create_booking

import (
	"errors"
	"net/http"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/api/middleware"
	createBooking "github.com/questarium/QST-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotInPast         = "этот слот уже в прошлом"
	msgSlotNotAvailable   = "Этот слот уже занят."
	msgNotEnoughSeats     = "недостаточно свободных мест в слоте"
	msgAdventureNotFound  = "сюжет не найден"
	msgDraftInvalid       = "форма заполнена с ошибками"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Идентификация опциональна: форма открыта и без логина
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}
	if req.Email == "" {
		if email, ok := middleware.GetUserEmail(r.Context()); ok {
			req.Email = email
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Draft validation failed: slot_id=%q, fields=%d",
				req.SlotID, len(validationErr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, &ValidationErrorResponse{
				Error:  msgDraftInvalid,
				Fields: validationErr.Fields,
			})

		case errors.Is(err, createBooking.ErrInvalidSlotID):
			h.logger.Warn("POST /bookings - Invalid slot ID: %q", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: slot_id=%q", req.SlotID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrAdventureNotFound):
			h.logger.Warn("POST /bookings - Adventure not found: adventure_id=%q", req.AdventureID)
			handlers.RespondNotFound(w, msgAdventureNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%q", req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrNotEnoughSeats):
			h.logger.Warn("POST /bookings - Not enough seats: slot_id=%q, players=%d", req.SlotID, req.Players)
			handlers.RespondConflict(w, msgNotEnoughSeats)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%q, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, slot_id=%s, status=%s",
		result.PublicID, result.SlotID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
