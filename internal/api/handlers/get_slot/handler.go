package get_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	openSlot "github.com/questarium/QST-ScheduleService/internal/usecase/open_slot"
)

type Handler struct {
	useCase OpenSlotUseCase
	logger  Logger
}

func NewHandler(useCase OpenSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	req := &openSlot.Request{
		SlotID:      vars["slotId"],
		Tier:        query.Get("tier"),
		AdventureID: query.Get("adventureId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, openSlot.ErrInvalidSlotID):
			// Битая ссылка на слот не ошибка: панель брони просто не
			// открывается
			h.logger.Warn("GET /schedule/slots/{slotId} - Unrecognized slot link: %q", req.SlotID)
			handlers.RespondJSON(w, http.StatusOK, EmptyResponse())

		default:
			h.logger.Error("GET /schedule/slots/{slotId} - Failed to open slot: slot_id=%q, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/slots/{slotId} - Slot opened: slot_id=%s, status=%s", result.Slot.ID, result.Slot.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
