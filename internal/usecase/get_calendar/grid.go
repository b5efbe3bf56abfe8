package get_calendar

import (
	"fmt"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// monthOf обрезает время до первого дня месяца
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// clampMonth приводит запрошенный месяц к окну записи
// Окно: от текущего месяца до текущего плюс MaxMonthsAhead включительно.
// Выход за границы не ошибка - месяц тихо прижимается к ближайшей границе,
// поэтому листание за край окна остается на месте
func clampMonth(requested, now time.Time) time.Time {
	first := monthOf(now)
	last := first.AddDate(0, domain.MaxMonthsAhead, 0)

	month := monthOf(requested)
	if month.Before(first) {
		return first
	}
	if month.After(last) {
		return last
	}
	return month
}

// leadingBlanks возвращает количество пустых клеток до первого дня месяца
// Сетка календаря начинается с понедельника
func leadingBlanks(month time.Time) int {
	return (int(monthOf(month).Weekday()) + 6) % 7
}

// buildDays собирает дни месяца со слотами
// Занятые места и пометки приходят снаружи, сборка детерминирована
func buildDays(month time.Time, loads map[string]int, overrides map[string]*domain.SlotOverride, availableOnly bool) ([]Day, error) {
	year, m := month.Year(), month.Month()
	daysTotal := domain.DaysInMonth(year, m)

	days := make([]Day, 0, daysTotal)
	for day := 1; day <= daysTotal; day++ {
		date := time.Date(year, m, day, 0, 0, 0, 0, time.UTC)

		slots := make([]domain.Slot, 0, len(domain.Periods))
		for _, period := range domain.Periods {
			key := slotKey(date, period)

			slot, err := domain.BuildSlot(year, m, day, period, loads[key], overrides[key])
			if err != nil {
				return nil, fmt.Errorf("build slot %s: %w", key, err)
			}

			if availableOnly && slot.Status != domain.SlotAvailable && slot.Status != domain.SlotPartial {
				continue
			}

			slots = append(slots, slot)
		}

		days = append(days, Day{
			Day:   day,
			Date:  date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return days, nil
}

// slotKey ключ слота для индексации занятости и пометок
func slotKey(date time.Time, period domain.Period) string {
	return date.Format(domain.DateFormat) + "/" + string(period)
}
