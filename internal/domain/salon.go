package domain

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// SalonTimings describes a salon's operating parameters.
// WorkingDays uses weekday numbers 0-6 with Sunday = 0.
type SalonTimings struct {
	SalonID     int64
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	WorkingDays []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithDefaults returns a copy with missing fields replaced by defaults:
// opening 09:00, closing 20:00, all days working.
func (t SalonTimings) WithDefaults() SalonTimings {
	out := t
	if out.OpeningTime.IsZero() {
		out.OpeningTime = DefaultOpeningTime
	}
	if out.ClosingTime.IsZero() {
		out.ClosingTime = DefaultClosingTime
	}
	if out.WorkingDays == nil {
		out.WorkingDays = []int{0, 1, 2, 3, 4, 5, 6}
	}
	return out
}

// IsWorkingDay reports whether weekday (0=Sunday..6=Saturday) is a working day.
// A nil WorkingDays list means every day is working.
func (t SalonTimings) IsWorkingDay(weekday int) bool {
	if t.WorkingDays == nil {
		return true
	}
	for _, d := range t.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}
