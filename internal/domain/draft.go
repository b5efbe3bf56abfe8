package domain

import "strings"

// AdventureAuto сентинель "подберите мне сюжет"
// При таком выборе комментарий обязателен: по нему ведущий подбирает сюжет
const AdventureAuto = "auto"

// FieldError ошибка валидации отдельного поля черновика
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Тексты ошибок валидации формы брони
const (
	MsgChooseAdventure  = "Выберите сюжет."
	MsgNameRequired     = "Укажите имя."
	MsgEmailRequired    = "Укажите email для подтверждения."
	MsgContactRequired  = "Укажите телефон или Telegram."
	MsgAgreeRequired    = "Нужно согласиться с политикой."
	MsgCommentRequired  = "Опишите пожелания для подбора сюжета."
	MsgUnknownChannel   = "Неизвестный канал связи."
	MsgUnknownTier      = "Неизвестный тариф."
	MsgCommentTooLong   = "Комментарий слишком длинный."
)

// BookingDraft черновик заявки на игру
// Создается заново при каждом открытии слота и никогда не переносится
// между слотами
type BookingDraft struct {
	SlotID         string         `json:"slotId"`
	AdventureID    string         `json:"adventureId"` // id сюжета или сентинель "auto"
	Tier           Tier           `json:"tier"`
	Players        int            `json:"players"`
	Name           string         `json:"name"`
	ContactChannel ContactChannel `json:"contactChannel"`
	Contact        string         `json:"contact"`
	Email          string         `json:"email,omitempty"`
	Comment        string         `json:"comment,omitempty"`
	Agree          bool           `json:"agree"`
}

// NewDraft создает свежий черновик для слота
// Тариф и сюжет могут прийти из контекста навигации (query параметры)
func NewDraft(slot Slot, adventureID string, tier Tier) BookingDraft {
	if !tier.IsValid() {
		tier = TierStandard
	}

	players := DefaultPlayers
	if players > slot.MaxPlayers {
		players = slot.MaxPlayers
	}

	return BookingDraft{
		SlotID:         slot.ID,
		AdventureID:    adventureID,
		Tier:           tier,
		Players:        players,
		ContactChannel: ChannelTelegram,
	}
}

// ClampPlayers приводит количество игроков к допустимому диапазону слота
// Выход за границы не ошибка - значение тихо обрезается
func ClampPlayers(players, minPlayers, maxPlayers int) int {
	if players < minPlayers {
		return minPlayers
	}
	if players > maxPlayers {
		return maxPlayers
	}
	return players
}

// NeedsStorySuggestion возвращает true, если сюжет подбирает клуб
func (d BookingDraft) NeedsStorySuggestion() bool {
	return d.AdventureID == AdventureAuto
}

// ContactValue возвращает контакт активного канала
func (d BookingDraft) ContactValue() string {
	if d.ContactChannel == ChannelEmail {
		return strings.TrimSpace(d.Email)
	}
	return strings.TrimSpace(d.Contact)
}

// Validate проверяет черновик и возвращает список ошибок полей
// Пустой список означает, что заявку можно отправлять
func (d BookingDraft) Validate() []FieldError {
	var errs []FieldError

	if d.AdventureID == "" {
		errs = append(errs, FieldError{Field: "adventureId", Message: MsgChooseAdventure})
	}

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: MsgNameRequired})
	}

	switch {
	case !d.ContactChannel.IsValid():
		errs = append(errs, FieldError{Field: "contactChannel", Message: MsgUnknownChannel})
	case d.ContactChannel == ChannelEmail:
		if strings.TrimSpace(d.Email) == "" {
			errs = append(errs, FieldError{Field: "email", Message: MsgEmailRequired})
		}
	default:
		if strings.TrimSpace(d.Contact) == "" {
			errs = append(errs, FieldError{Field: "contact", Message: MsgContactRequired})
		}
	}

	if !d.Tier.IsValid() {
		errs = append(errs, FieldError{Field: "tier", Message: MsgUnknownTier})
	}

	if !d.Agree {
		errs = append(errs, FieldError{Field: "agree", Message: MsgAgreeRequired})
	}

	if d.NeedsStorySuggestion() && strings.TrimSpace(d.Comment) == "" {
		errs = append(errs, FieldError{Field: "comment", Message: MsgCommentRequired})
	}

	if len(d.Comment) > MaxCommentLength {
		errs = append(errs, FieldError{Field: "comment", Message: MsgCommentTooLong})
	}

	return errs
}

// IsValid возвращает true, если черновик готов к отправке
func (d BookingDraft) IsValid() bool {
	return len(d.Validate()) == 0
}
