package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	storage "github.com/questarium/QST-ScheduleService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubBookingRepo struct {
	loads []storage.SlotLoad
}

func (s *stubBookingRepo) GetSlotLoads(ctx context.Context, from, to time.Time) ([]storage.SlotLoad, error) {
	return s.loads, nil
}

type stubScheduleRepo struct {
	overrides []domain.SlotOverride
}

func (s *stubScheduleRepo) GetForRange(ctx context.Context, from, to time.Time) ([]domain.SlotOverride, error) {
	return s.overrides, nil
}

func newUseCase(now time.Time, loads []storage.SlotLoad, overrides []domain.SlotOverride) *UseCase {
	uc := NewUseCase(&stubBookingRepo{loads: loads}, &stubScheduleRepo{overrides: overrides}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecuteCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.September, 10, 15, 0, 0, 0, time.UTC)
	uc := newUseCase(now, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "2026-09", resp.Month)
	assert.Equal(t, "СЕНТЯБРЬ 2026", resp.Title)
	assert.False(t, resp.HasPrev)
	assert.True(t, resp.HasNext)
	// 1 сентября 2026 - вторник
	assert.Equal(t, 1, resp.LeadingBlanks)
	assert.Equal(t, []string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}, resp.DaysOfWeek)
	require.Len(t, resp.Days, 30)

	for _, day := range resp.Days {
		require.Len(t, day.Slots, 2)
		assert.Equal(t, domain.SlotAvailable, day.Slots[0].Status)
	}
}

func TestExecuteClampsMonthToWindow(t *testing.T) {
	now := time.Date(2026, time.September, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		month     string
		wantMonth string
		wantPrev  bool
		wantNext  bool
	}{
		{name: "past month pinned to current", month: "2026-06", wantMonth: "2026-09", wantPrev: false, wantNext: true},
		{name: "beyond window pinned to last", month: "2027-05", wantMonth: "2026-12", wantPrev: true, wantNext: false},
		{name: "inside window untouched", month: "2026-11", wantMonth: "2026-11", wantPrev: true, wantNext: true},
		{name: "last month of window", month: "2026-12", wantMonth: "2026-12", wantPrev: true, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(now, nil, nil)

			resp, err := uc.Execute(context.Background(), &Request{Month: tt.month})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, resp.Month)
			assert.Equal(t, tt.wantPrev, resp.HasPrev)
			assert.Equal(t, tt.wantNext, resp.HasNext)
		})
	}
}

func TestExecuteNormalizesMalformedDeepLink(t *testing.T) {
	now := time.Date(2026, time.September, 10, 15, 0, 0, 0, time.UTC)

	t.Run("malformed month reads as current", func(t *testing.T) {
		for _, month := range []string{"сентябрь", "2026-13", "not-a-month", "2026/09"} {
			uc := newUseCase(now, nil, nil)

			resp, err := uc.Execute(context.Background(), &Request{Month: month})
			require.NoError(t, err, month)
			assert.Equal(t, "2026-09", resp.Month, month)
		}
	})

	t.Run("unknown availability reads as no filter", func(t *testing.T) {
		loads := []storage.SlotLoad{
			{Date: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), Period: domain.PeriodDaytime, Players: 6},
		}
		uc := newUseCase(now, loads, nil)

		resp, err := uc.Execute(context.Background(), &Request{Availability: "busy"})
		require.NoError(t, err)

		// Занятый слот остался в сетке - фильтр не включился
		var seen bool
		for _, day := range resp.Days {
			for _, slot := range day.Slots {
				if slot.ID == "2026-09-15-daytime" {
					seen = true
					assert.Equal(t, domain.SlotBooked, slot.Status)
				}
			}
		}
		assert.True(t, seen)
	})
}

func TestExecuteSlotStatuses(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	loads := []storage.SlotLoad{
		{Date: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), Period: domain.PeriodDaytime, Players: 6},
		{Date: time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC), Period: domain.PeriodEvening, Players: 4},
	}
	overrides := []domain.SlotOverride{
		{Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), Period: domain.PeriodEvening, Status: domain.SlotOnRequest},
	}

	uc := newUseCase(now, loads, overrides)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	slotByID := make(map[string]domain.Slot)
	for _, day := range resp.Days {
		for _, slot := range day.Slots {
			slotByID[slot.ID] = slot
		}
	}

	assert.Equal(t, domain.SlotBooked, slotByID["2026-09-15-daytime"].Status)
	assert.Equal(t, domain.SlotPartial, slotByID["2026-09-20-evening"].Status)
	assert.Equal(t, 2, slotByID["2026-09-20-evening"].Remaining)
	assert.Equal(t, domain.SlotOnRequest, slotByID["2026-09-10-evening"].Status)
	assert.Equal(t, domain.SlotAvailable, slotByID["2026-09-15-evening"].Status)
}

func TestExecuteAvailabilityFilter(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	loads := []storage.SlotLoad{
		{Date: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), Period: domain.PeriodDaytime, Players: 6},
	}
	overrides := []domain.SlotOverride{
		{Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), Period: domain.PeriodEvening, Status: domain.SlotOnRequest},
	}

	uc := newUseCase(now, loads, overrides)

	resp, err := uc.Execute(context.Background(), &Request{Availability: AvailabilityAvailable})
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, slot := range day.Slots {
			assert.NotEqual(t, "2026-09-15-daytime", slot.ID)
			assert.NotEqual(t, "2026-09-10-evening", slot.ID)
		}
	}

	// Скрытие занятых слотов не трогает сетку месяца
	assert.Len(t, resp.Days, 30)
}
