package get_calendar

import (
	"net/http"

	"github.com/questarium/QST-ScheduleService/internal/api/handlers"
	getCalendar "github.com/questarium/QST-ScheduleService/internal/usecase/get_calendar"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/calendar
// Битые query параметры не отклоняются: use case сам приводит их к безопасным
// значениям, ссылка на календарь всегда открывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getCalendar.Request{
		Month:        query.Get("month"),
		Availability: query.Get("availability"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /schedule/calendar - Failed to build calendar: month=%q, error=%v", req.Month, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/calendar - Calendar built: month=%s, days=%d", result.Month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
