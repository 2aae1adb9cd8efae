package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

func domainTime(s string) types.TimeString {
	return types.TimeString(s)
}

func TestCalculateDuration_ExplicitTimesWin(t *testing.T) {
	// Явные времена важнее любых услуг
	services := []Item{{DurationMinutes: 45}}
	combos := []Item{{DurationText: "2 hours"}}

	assert.Equal(t, 75, CalculateDuration("10:00", "11:15", nil, nil))
	assert.Equal(t, 75, CalculateDuration("10:00", "11:15", services, combos))
	assert.Equal(t, 30, CalculateDuration("19:30", "20:00", services, combos))
}

func TestCalculateDuration_ItemFallback(t *testing.T) {
	tests := []struct {
		name     string
		services []Item
		combos   []Item
		want     int
	}{
		{
			name:     "numeric service plus hour combo",
			services: []Item{{DurationMinutes: 45}},
			combos:   []Item{{DurationText: "1 hour"}},
			want:     105,
		},
		{
			name:     "text minutes",
			services: []Item{{DurationText: "45 minutes"}},
			want:     45,
		},
		{
			name:     "text hours",
			services: []Item{{DurationText: "2 hours"}},
			want:     120,
		},
		{
			name:     "multiple services summed",
			services: []Item{{DurationMinutes: 30}, {DurationMinutes: 20}, {DurationText: "30 min"}},
			want:     80,
		},
		{
			name: "nothing selected - default",
			want: 30,
		},
		{
			name:     "unparseable text - default",
			services: []Item{{DurationText: "ages"}},
			want:     30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDuration("", "", tt.services, tt.combos))
		})
	}
}

func TestCalculateDuration_DegenerateTimeRange(t *testing.T) {
	// Конец раньше начала - ошибка данных, отрицательное число не возвращается
	assert.Equal(t, 30, CalculateDuration("11:00", "10:00", nil, nil))
	assert.Equal(t, 30, CalculateDuration("11:00", "11:00", nil, nil))

	// Падаем на сумму услуг
	assert.Equal(t, 45, CalculateDuration("11:00", "10:00", []Item{{DurationMinutes: 45}}, nil))
}

func TestCalculateDuration_InvalidTimeFallsThrough(t *testing.T) {
	assert.Equal(t, 60, CalculateDuration("bad", "11:00", []Item{{DurationMinutes: 60}}, nil))
	assert.Equal(t, 30, CalculateDuration("10:00", "oops", nil, nil))
}

func TestEndTime(t *testing.T) {
	assert.Equal(t, types.TimeString("11:15"), EndTime("10:00", 75))
	assert.Equal(t, types.TimeString("10:00"), EndTime("09:30", 30))
	// Перенос через полночь с нулевым паддингом
	assert.Equal(t, types.TimeString("00:30"), EndTime("23:45", 45))
	// Некорректное начало - нулевое значение
	assert.Equal(t, types.TimeString(""), EndTime("oops", 30))
}

func TestEndTimeRoundTrip(t *testing.T) {
	// Пара EndTime/CalculateDuration устойчива к круговому преобразованию
	starts := []types.TimeString{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
		"18:00", "18:30", "19:00", "19:30",
	}
	durations := []int{30, 45, 60, 90, 120}

	for _, start := range starts {
		for _, duration := range durations {
			end := EndTime(start, duration)
			got := CalculateDuration(start, end, nil, nil)
			assert.Equal(t, duration, got, "start=%s duration=%d", start, duration)

			roundTrip := EndTime(start, CalculateDuration(start, EndTime(start, duration), nil, nil))
			assert.Equal(t, end, roundTrip, "start=%s duration=%d", start, duration)
		}
	}
}

func TestParseItemDuration(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
	}{
		{name: "numeric wins over text", item: Item{DurationMinutes: 40, DurationText: "2 hours"}, want: 40},
		{name: "minutes text", item: Item{DurationText: "45 minutes"}, want: 45},
		{name: "single hour", item: Item{DurationText: "1 hour"}, want: 60},
		{name: "plural hours", item: Item{DurationText: "2 hours"}, want: 120},
		{name: "hr abbreviation", item: Item{DurationText: "2 hrs"}, want: 120},
		{name: "bare number treated as minutes", item: Item{DurationText: "50"}, want: 50},
		{name: "padded text", item: Item{DurationText: "  30 min  "}, want: 30},
		{name: "empty", item: Item{}, want: 0},
		{name: "no leading number", item: Item{DurationText: "an hour"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseItemDuration(tt.item))
		})
	}
}
