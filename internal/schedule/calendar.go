// Package schedule содержит чистую, stateless логику расписания салона:
// генерация сетки слотов, наложение бронирований, подбор доступных мастеров
// и вычисление длительности. Все функции - чистые функции от своих аргументов,
// без внутреннего состояния и побочных эффектов.
package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// DaySlots returns the ordered 30-minute slot grid for the given date,
// or an empty slice when the salon is closed that day.
//
// Missing timing fields fall back to defaults (09:00-20:00, all days open).
// The grid is a half-open interval [opening, closing): a slot starting at
// closing time is never produced. A misconfigured opening >= closing yields
// an empty grid rather than a negative range.
func DaySlots(date time.Time, timings domain.SalonTimings) []types.TimeString {
	timings = timings.WithDefaults()

	// Закрытый день отсекаем до генерации сетки
	if !timings.IsWorkingDay(int(date.Weekday())) {
		return []types.TimeString{}
	}

	openMinutes, err := timings.OpeningTime.MinutesOfDay()
	if err != nil {
		return []types.TimeString{}
	}
	closeMinutes, err := timings.ClosingTime.MinutesOfDay()
	if err != nil {
		return []types.TimeString{}
	}

	if openMinutes >= closeMinutes {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (closeMinutes-openMinutes)/domain.SlotGranularityMinutes+1)
	for m := openMinutes; m < closeMinutes; m += domain.SlotGranularityMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}

	return slots
}

// WeekDays returns the seven calendar days of the week containing anchor,
// Sunday through Saturday. BookingCount per day is the unfiltered count of
// bookings on that calendar day. Exactly one entry has IsToday when "now"
// falls inside the displayed week.
func WeekDays(anchor, selected, now time.Time, bookings []*domain.Booking) []domain.CalendarDay {
	// Начало недели - воскресенье
	weekStart := dateOnly(anchor).AddDate(0, 0, -int(anchor.Weekday()))

	days := make([]domain.CalendarDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		count := 0
		for _, b := range bookings {
			if isSameDay(b.BookingDate, day) {
				count++
			}
		}

		days = append(days, domain.CalendarDay{
			Date:         day,
			IsToday:      isSameDay(day, now),
			IsSelected:   isSameDay(day, selected),
			BookingCount: count,
		})
	}

	return days
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
// Сравнение только по (год, месяц, день) - никогда по полному timestamp
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
