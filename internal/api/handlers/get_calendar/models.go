package get_calendar

import (
	"github.com/questarium/QST-ScheduleService/internal/domain"
	getCalendar "github.com/questarium/QST-ScheduleService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month         string        `json:"month"`
	Title         string        `json:"title"`
	HasPrev       bool          `json:"hasPrev"`
	HasNext       bool          `json:"hasNext"`
	DaysOfWeek    []string      `json:"daysOfWeek"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []DayResponse `json:"days"`
}

// DayResponse день месяца со слотами
type DayResponse struct {
	Day   int            `json:"day"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse слот календаря
type SlotResponse struct {
	ID              string `json:"id"`
	DateLabel       string `json:"dateLabel"`
	TimeLabel       string `json:"timeLabel"`
	TimeStart       string `json:"timeStart"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	MaxPlayers      int    `json:"maxPlayers"`
	Remaining       int    `json:"remaining"`
	MinPlayers      int    `json:"minPlayers"`
}

// FromDomainSlot конвертирует domain слот в HTTP response
func FromDomainSlot(slot domain.Slot) SlotResponse {
	return SlotResponse{
		ID:              slot.ID,
		DateLabel:       slot.DateLabel,
		TimeLabel:       slot.TimeLabel,
		TimeStart:       slot.TimeStart.String(),
		DurationMinutes: slot.DurationMinutes,
		Status:          string(slot.Status),
		MaxPlayers:      slot.MaxPlayers,
		Remaining:       slot.Remaining,
		MinPlayers:      slot.MinPlayers,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, FromDomainSlot(slot))
		}
		days = append(days, DayResponse{
			Day:   day.Day,
			Date:  day.Date,
			Slots: slots,
		})
	}

	return &CalendarResponse{
		Month:         resp.Month,
		Title:         resp.Title,
		HasPrev:       resp.HasPrev,
		HasNext:       resp.HasNext,
		DaysOfWeek:    resp.DaysOfWeek,
		LeadingBlanks: resp.LeadingBlanks,
		Days:          days,
	}
}
