package domain

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// TimeSlot is a derived, ephemeral view of one 30-minute slot.
// Recomputed on every query, never persisted.
type TimeSlot struct {
	Time        types.TimeString
	IsAvailable bool
	Bookings    []*Booking
}

// IsOccupied returns true if at least one booking matched the slot
func (s *TimeSlot) IsOccupied() bool {
	return !s.IsAvailable
}

// CalendarDay is a derived per-day summary used for the week view
type CalendarDay struct {
	Date         time.Time
	IsToday      bool
	IsSelected   bool
	BookingCount int
}
