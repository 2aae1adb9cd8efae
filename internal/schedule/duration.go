package schedule

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// Item is a duration-bearing catalog entry (service or combo offer).
// DurationMinutes wins when positive; otherwise DurationText is parsed.
type Item struct {
	DurationMinutes int
	DurationText    string
}

// CalculateDuration derives an appointment's duration in minutes through a
// strict fallback chain:
//
//  1. Explicit start/end times always win: when both parse and the difference
//     is strictly positive, that difference is returned regardless of the
//     selected services/combos.
//  2. Otherwise the item durations are summed; a positive sum is returned.
//  3. Otherwise the default of 30 minutes.
//
// A non-positive time difference (end at or before start) is a data error and
// never escapes: the chain falls through to the item sum instead.
func CalculateDuration(startTime, endTime types.TimeString, services, combos []Item) int {
	if !startTime.IsZero() && !endTime.IsZero() {
		if diff, err := endTime.DiffMinutes(startTime); err == nil && diff > 0 {
			return diff
		}
	}

	sum := 0
	for _, s := range services {
		sum += ParseItemDuration(s)
	}
	for _, c := range combos {
		sum += ParseItemDuration(c)
	}
	if sum > 0 {
		return sum
	}

	return domain.DefaultDurationMinutes
}

// EndTime returns the time durationMinutes after start, zero-padded HH:MM,
// wrapping past midnight. An invalid start yields the zero TimeString.
func EndTime(start types.TimeString, durationMinutes int) types.TimeString {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return ""
	}
	return end
}

// ParseItemDuration returns the item's duration in minutes.
// Text forms carry a leading integer and a unit token: "45 minutes" -> 45,
// "2 hours" -> 120. Unparseable text counts as zero.
func ParseItemDuration(item Item) int {
	if item.DurationMinutes > 0 {
		return item.DurationMinutes
	}

	text := strings.TrimSpace(item.DurationText)
	if text == "" {
		return 0
	}

	// Ведущее число
	i := 0
	for i < len(text) && unicode.IsDigit(rune(text[i])) {
		i++
	}
	if i == 0 {
		return 0
	}

	value, err := strconv.Atoi(text[:i])
	if err != nil || value <= 0 {
		return 0
	}

	// Если в единице измерения встречается "hour" - это часы
	unit := strings.ToLower(text[i:])
	if strings.Contains(unit, "hour") || strings.Contains(unit, "hr") {
		return value * 60
	}

	return value
}
