package get_calendar

import (
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// normalizeRequest приводит параметры deep link к безопасным значениям
// Битая ссылка не ошибка: месяц не по формату читается как текущий,
// незнакомое значение фильтра доступности - как выключенный фильтр
func normalizeRequest(req *Request) {
	if req.Month != "" {
		if _, err := time.Parse(domain.MonthFormat, req.Month); err != nil {
			req.Month = ""
		}
	}

	if req.Availability != AvailabilityAvailable {
		req.Availability = ""
	}
}
