package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/questarium/QST-ScheduleService/pkg/types"
)

// Period период игрового дня
type Period string

const (
	PeriodDaytime Period = "daytime"
	PeriodEvening Period = "evening"
)

// Periods все периоды в порядке следования внутри дня
var Periods = []Period{PeriodDaytime, PeriodEvening}

// IsValid проверяет, что период известен
func (p Period) IsValid() bool {
	return p == PeriodDaytime || p == PeriodEvening
}

// Label возвращает подпись периода ("ДЕНЬ" / "ВЕЧЕР")
func (p Period) Label() string {
	if p == PeriodEvening {
		return "ВЕЧЕР"
	}
	return "ДЕНЬ"
}

// TimeStart возвращает время начала игр периода
func (p Period) TimeStart() types.TimeString {
	if p == PeriodEvening {
		return "19:00"
	}
	return "12:00"
}

// DurationMinutes возвращает длительность игр периода
func (p Period) DurationMinutes() int {
	if p == PeriodEvening {
		return 300
	}
	return 240
}

// TimeRange возвращает интервал периода для подписи слота
// Интервалы фиксированы и не выводятся из длительности: вечерняя игра длится
// 5 часов, но в афише показывается окно "19:00–23:00"
func (p Period) TimeRange() string {
	if p == PeriodEvening {
		return "19:00–23:00"
	}
	return "12:00–16:00"
}

// SlotStatus статус слота в календаре
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPartial   SlotStatus = "partial"
	SlotBooked    SlotStatus = "booked"
	SlotOnRequest SlotStatus = "on-request"
)

// IsBookable возвращает true, если по слоту можно открыть форму брони
// Занятый слот не открывает форму - только уведомление
func (s SlotStatus) IsBookable() bool {
	return s != SlotBooked
}

var (
	// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
	ErrInvalidSlotID = errors.New("domain: invalid slot id")

	// ErrDayOutOfRange возвращается для дня за пределами месяца
	ErrDayOutOfRange = errors.New("domain: day is out of month range")

	// ErrInvalidPeriod возвращается для неизвестного периода
	ErrInvalidPeriod = errors.New("domain: invalid period")
)

// slotIDPattern грамматика идентификатора слота: {year}-{month}-{day}-{period}
var slotIDPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(daytime|evening)$`)

// SlotID разобранный идентификатор слота
type SlotID struct {
	Year   int
	Month  time.Month
	Day    int
	Period Period
}

// ParseSlotID разбирает идентификатор слота
// Строки, не соответствующие грамматике или календарю, отклоняются:
// слот для 31 февраля не существует
func ParseSlotID(s string) (SlotID, error) {
	m := slotIDPattern.FindStringSubmatch(s)
	if m == nil {
		return SlotID{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return SlotID{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, s)
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return SlotID{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, s)
	}

	return SlotID{
		Year:   year,
		Month:  time.Month(month),
		Day:    day,
		Period: Period(m[4]),
	}, nil
}

// String собирает каноническую форму идентификатора
func (id SlotID) String() string {
	return fmt.Sprintf("%04d-%02d-%02d-%s", id.Year, int(id.Month), id.Day, id.Period)
}

// Date возвращает дату слота (без времени, в UTC)
func (id SlotID) Date() time.Time {
	return time.Date(id.Year, id.Month, id.Day, 0, 0, 0, 0, time.UTC)
}

// Slot value object бронируемого слота
// Пересобирается на каждый запрос, не хранится
type Slot struct {
	ID              string
	DateLabel       string
	TimeLabel       string
	TimeStart       types.TimeString
	DurationMinutes int
	Status          SlotStatus
	MaxPlayers      int
	Remaining       int
	MinPlayers      int
}

// SlotOverride ручная пометка слота в расписании (например, "по запросу")
// Хранится отдельно от броней и имеет приоритет над счетчиком мест
type SlotOverride struct {
	Date   time.Time
	Period Period
	Status SlotStatus
}

// SlotStatusFor выводит статус слота из занятых мест и ручной пометки
// Пометка имеет приоритет. Без пометки: пустой слот свободен; слот, в котором
// еще помещается минимальная бронь, занят частично; остальное занято
func SlotStatusFor(playersBooked int, override *SlotOverride) SlotStatus {
	if override != nil {
		return override.Status
	}
	if playersBooked <= 0 {
		return SlotAvailable
	}
	if MaxPlayers-playersBooked >= MinPlayers {
		return SlotPartial
	}
	return SlotBooked
}

// BuildSlot собирает value object слота для дня месяца
// Для дня за пределами месяца слот не фабрикуется - возвращается ошибка
//
// Поле Remaining - проекция для формы брони: для частично занятого слота это
// реальный остаток мест, для остальных статусов - вместимость стола. Проверка
// вместимости при создании брони опирается на счетчик занятых мест, а не на
// эту проекцию
func BuildSlot(year int, month time.Month, day int, period Period, playersBooked int, override *SlotOverride) (Slot, error) {
	if !period.IsValid() {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Slot{}, fmt.Errorf("%w: day=%d month=%s", ErrDayOutOfRange, day, month)
	}

	status := SlotStatusFor(playersBooked, override)

	remaining := MaxPlayers
	if status == SlotPartial {
		remaining = MaxPlayers - playersBooked
	}

	id := SlotID{Year: year, Month: month, Day: day, Period: period}

	return Slot{
		ID:              id.String(),
		DateLabel:       fmt.Sprintf("%d %s", day, strings.ToLower(MonthNames[int(month)-1])),
		TimeLabel:       fmt.Sprintf("%s (%s)", period.Label(), period.TimeRange()),
		TimeStart:       period.TimeStart(),
		DurationMinutes: period.DurationMinutes(),
		Status:          status,
		MaxPlayers:      MaxPlayers,
		Remaining:       remaining,
		MinPlayers:      MinPlayers,
	}, nil
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
