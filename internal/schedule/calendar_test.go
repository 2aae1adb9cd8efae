package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaySlots_FullDay(t *testing.T) {
	timings := domain.SalonTimings{
		OpeningTime: "09:00",
		ClosingTime: "20:00",
		WorkingDays: []int{0, 1, 2, 3, 4, 5, 6},
	}

	// 2025-10-13 - понедельник
	slots := DaySlots(date(2025, time.October, 13), timings)

	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("19:30"), slots[len(slots)-1])

	// Строго возрастающая последовательность, ни один слот не достигает закрытия
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
	for _, s := range slots {
		assert.True(t, s.IsBefore("20:00"))
	}
}

func TestDaySlots_ClosedDay(t *testing.T) {
	timings := domain.SalonTimings{
		OpeningTime: "09:00",
		ClosingTime: "20:00",
		WorkingDays: []int{1, 2, 3, 4, 5, 6}, // воскресенье выходной
	}

	// 2025-10-12 - воскресенье
	slots := DaySlots(date(2025, time.October, 12), timings)
	assert.Empty(t, slots)

	// Понедельник работает
	assert.NotEmpty(t, DaySlots(date(2025, time.October, 13), timings))
}

func TestDaySlots_Defaults(t *testing.T) {
	// Пустые тайминги - дефолтные 09:00-20:00, все дни рабочие
	slots := DaySlots(date(2025, time.October, 12), domain.SalonTimings{})
	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func TestDaySlots_Misconfigured(t *testing.T) {
	tests := []struct {
		name    string
		timings domain.SalonTimings
	}{
		{
			name:    "opening after closing",
			timings: domain.SalonTimings{OpeningTime: "20:00", ClosingTime: "09:00"},
		},
		{
			name:    "opening equals closing",
			timings: domain.SalonTimings{OpeningTime: "10:00", ClosingTime: "10:00"},
		},
		{
			name:    "unparseable opening",
			timings: domain.SalonTimings{OpeningTime: "not-a-time", ClosingTime: "18:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, DaySlots(date(2025, time.October, 13), tt.timings))
		})
	}
}

func TestDaySlots_ShortDay(t *testing.T) {
	timings := domain.SalonTimings{OpeningTime: "10:00", ClosingTime: "11:30"}
	slots := DaySlots(date(2025, time.October, 13), timings)

	require.Equal(t, []types.TimeString{"10:00", "10:30", "11:00"}, slots)
}

func TestWeekDays_SpansSundayToSaturday(t *testing.T) {
	// 2025-10-15 - среда; неделя: вс 12.10 - сб 18.10
	anchor := date(2025, time.October, 15)
	now := date(2025, time.October, 15)

	days := WeekDays(anchor, anchor, now, nil)

	require.Len(t, days, 7)
	assert.Equal(t, time.Sunday, days[0].Date.Weekday())
	assert.Equal(t, time.Saturday, days[6].Date.Weekday())
	assert.Equal(t, date(2025, time.October, 12), days[0].Date)
	assert.Equal(t, date(2025, time.October, 18), days[6].Date)

	// Ровно один IsToday, когда "сегодня" внутри недели
	todayCount := 0
	for _, d := range days {
		if d.IsToday {
			todayCount++
			assert.Equal(t, now, d.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestWeekDays_TodayOutsideWeek(t *testing.T) {
	anchor := date(2025, time.October, 15)
	now := date(2025, time.November, 3)

	days := WeekDays(anchor, anchor, now, nil)

	require.Len(t, days, 7)
	for _, d := range days {
		assert.False(t, d.IsToday)
	}
}

func TestWeekDays_BookingCounts(t *testing.T) {
	anchor := date(2025, time.October, 15)

	bookings := []*domain.Booking{
		{ID: 1, BookingDate: date(2025, time.October, 13), StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: date(2025, time.October, 13), StartTime: "11:00", Status: domain.StatusCancelled},
		{ID: 3, BookingDate: date(2025, time.October, 17), StartTime: "12:00", Status: domain.StatusPending},
		// Вне отображаемой недели
		{ID: 4, BookingDate: date(2025, time.October, 20), StartTime: "12:00", Status: domain.StatusPending},
	}

	days := WeekDays(anchor, anchor, anchor, bookings)

	require.Len(t, days, 7)
	// Понедельник 13.10: обе брони считаются, статус не фильтруется
	assert.Equal(t, 2, days[1].BookingCount)
	assert.Equal(t, 1, days[5].BookingCount)
	assert.Equal(t, 0, days[0].BookingCount)
}

func TestIsSameDay_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.October, 13, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.October, 13, 22, 30, 0, 0, time.UTC)

	assert.True(t, isSameDay(morning, evening))
	assert.False(t, isSameDay(morning, morning.AddDate(0, 0, 1)))
}
