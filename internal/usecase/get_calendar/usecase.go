package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// UseCase use case для получения месяца календаря
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения месяца календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: month=%q, availability=%q", req.Month, req.Availability)

	// 1. Нормализуем параметры deep link
	normalizeRequest(req)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Определяем месяц с учетом окна записи
	requested := monthOf(now)
	if req.Month != "" {
		// После нормализации месяц гарантированно парсится
		parsed, _ := time.Parse(domain.MonthFormat, req.Month)
		requested = parsed
	}
	month := clampMonth(requested, now)

	from := month
	to := month.AddDate(0, 1, -1)

	// 4. Получаем занятость слотов месяца
	loads, err := uc.bookingRepo.GetSlotLoads(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get slot loads: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot loads: %v", ErrInternal, err)
	}

	loadIndex := make(map[string]int, len(loads))
	for _, load := range loads {
		loadIndex[slotKey(load.Date, load.Period)] = load.Players
	}

	// 5. Получаем ручные пометки расписания
	overrides, err := uc.scheduleRepo.GetForRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get slot overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	overrideIndex := make(map[string]*domain.SlotOverride, len(overrides))
	for i := range overrides {
		overrideIndex[slotKey(overrides[i].Date, overrides[i].Period)] = &overrides[i]
	}

	// 6. Собираем сетку месяца
	availableOnly := req.Availability == AvailabilityAvailable
	days, err := buildDays(month, loadIndex, overrideIndex, availableOnly)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to build days: %v", err)
		return nil, fmt.Errorf("%w: failed to build days: %v", ErrInternal, err)
	}

	current := monthOf(now)
	last := current.AddDate(0, domain.MaxMonthsAhead, 0)

	uc.logger.Info("GetCalendar: month=%s, days=%d", month.Format(domain.MonthFormat), len(days))

	return &Response{
		Month:         month.Format(domain.MonthFormat),
		Title:         fmt.Sprintf("%s %d", domain.MonthNames[int(month.Month())-1], month.Year()),
		HasPrev:       month.After(current),
		HasNext:       month.Before(last),
		DaysOfWeek:    domain.DaysOfWeek[:],
		LeadingBlanks: leadingBlanks(month),
		Days:          days,
	}, nil
}
