package create_booking

import (
	"fmt"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// parseSlot разбирает идентификатор слота и отсекает прошедшие даты
func parseSlot(slotID string, now time.Time) (domain.SlotID, error) {
	id, err := domain.ParseSlotID(slotID)
	if err != nil {
		return domain.SlotID{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, slotID)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if id.Date().Before(today) {
		return domain.SlotID{}, fmt.Errorf("%w: %q", ErrSlotInPast, slotID)
	}

	return id, nil
}

// buildDraft собирает черновик из запроса
// Количество игроков тихо обрезается до вместимости слота
func buildDraft(req *Request, slot domain.Slot) domain.BookingDraft {
	draft := domain.NewDraft(slot, req.AdventureID, domain.Tier(req.Tier))

	// Ноль - это отсутствующее поле JSON, а не запрос на ноль игроков:
	// берется дефолт черновика, а не обрезка до минимума
	if req.Players != 0 {
		draft.Players = domain.ClampPlayers(req.Players, slot.MinPlayers, slot.MaxPlayers)
	}

	draft.Name = req.Name
	if req.ContactChannel != "" {
		draft.ContactChannel = domain.ContactChannel(req.ContactChannel)
	}
	draft.Contact = req.Contact
	draft.Email = req.Email
	draft.Comment = req.Comment
	draft.Agree = req.Agree

	// Тариф из запроса не откатывается на дефолт: неизвестный тариф
	// должен завалить валидацию, а не молча смениться
	if req.Tier != "" {
		draft.Tier = domain.Tier(req.Tier)
	}

	return draft
}
