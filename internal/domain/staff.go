package domain

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// StaffMember represents a salon employee
type StaffMember struct {
	ID              int64
	SalonID         int64
	Name            string
	IsActive        bool
	Specializations []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BreakWindow объявленный перерыв сотрудника
// Перерыв может быть ограничен конкретными услугами/комбо: пустые списки
// означают, что перерыв действует для любых бронирований
type BreakWindow struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	ServiceIDs    []int64
	ComboOfferIDs []int64
}

// Covers reports whether the requested start time falls inside the break.
// The window is half-open: [StartTime, EndTime).
func (w BreakWindow) Covers(startTime types.TimeString) bool {
	if w.StartTime.IsZero() || w.EndTime.IsZero() {
		return false
	}
	return !startTime.IsBefore(w.StartTime) && startTime.IsBefore(w.EndTime)
}

// AppliesTo reports whether the break is in effect for the selected
// service/combo set. Unscoped windows apply to everything.
func (w BreakWindow) AppliesTo(serviceIDs, comboOfferIDs []int64) bool {
	if len(w.ServiceIDs) == 0 && len(w.ComboOfferIDs) == 0 {
		return true
	}
	for _, scoped := range w.ServiceIDs {
		for _, id := range serviceIDs {
			if scoped == id {
				return true
			}
		}
	}
	for _, scoped := range w.ComboOfferIDs {
		for _, id := range comboOfferIDs {
			if scoped == id {
				return true
			}
		}
	}
	return false
}
