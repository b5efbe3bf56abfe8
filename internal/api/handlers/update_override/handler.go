package update_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	"github.com/questarium/QST-ScheduleService/internal/domain"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidStatus      = "некорректный статус пометки"
)

// Статусы, допустимые в ручной пометке слота
var allowedStatuses = map[domain.SlotStatus]bool{
	domain.SlotOnRequest: true,
	domain.SlotBooked:    true,
}

type Handler struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

func NewHandler(scheduleRepo ScheduleRepository, logger Logger) *Handler {
	return &Handler{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// OverrideRequest HTTP request model
// Пустой статус снимает пометку со слота
type OverrideRequest struct {
	Status string `json:"status"`
}

// OverrideResponse HTTP response model
type OverrideResponse struct {
	SlotID string `json:"slotId"`
	Status string `json:"status,omitempty"`
}

// Handle PUT /api/v1/schedule/slots/{slotId}/override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := domain.ParseSlotID(vars["slotId"])
	if err != nil {
		h.logger.Warn("PUT /schedule/slots/{slotId}/override - Invalid slot ID: %q", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req OverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/slots/{slotId}/override - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Status == "" {
		// Снятие отсутствующей пометки - no-op
		err := h.scheduleRepo.Delete(r.Context(), slotID.Date(), slotID.Period)
		if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			h.logger.Error("PUT /schedule/slots/{slotId}/override - Failed to delete override: slot_id=%s, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("PUT /schedule/slots/{slotId}/override - Override cleared: slot_id=%s", slotID)
		handlers.RespondJSON(w, http.StatusOK, &OverrideResponse{SlotID: slotID.String()})
		return
	}

	status := domain.SlotStatus(req.Status)
	if !allowedStatuses[status] {
		h.logger.Warn("PUT /schedule/slots/{slotId}/override - Invalid status: %q", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	override := domain.SlotOverride{
		Date:   slotID.Date(),
		Period: slotID.Period,
		Status: status,
	}
	if err := h.scheduleRepo.Upsert(r.Context(), override); err != nil {
		h.logger.Error("PUT /schedule/slots/{slotId}/override - Failed to upsert override: slot_id=%s, error=%v",
			slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /schedule/slots/{slotId}/override - Override set: slot_id=%s, status=%s", slotID, status)
	handlers.RespondJSON(w, http.StatusOK, &OverrideResponse{
		SlotID: slotID.String(),
		Status: string(status),
	})
}
