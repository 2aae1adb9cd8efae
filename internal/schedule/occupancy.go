package schedule

import (
	"strings"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// ResolveOccupancy overlays the booking set onto the slot grid, applying the
// filter bundle as a conjunction. A slot is available iff zero bookings match
// its start time on the target date under every defined filter.
//
// Slot order is preserved, no slot is dropped or duplicated. Tighter filters
// can only widen availability: a staff-filtered view shows a slot as open if
// that staff member has no booking then, even when another one does.
func ResolveOccupancy(
	slots []types.TimeString,
	bookings []*domain.Booking,
	targetDate time.Time,
	filters domain.BookingFilters,
) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, slotTime := range slots {
		matching := make([]*domain.Booking, 0)

		for _, booking := range bookings {
			if !isSameDay(booking.BookingDate, targetDate) {
				continue
			}
			if booking.StartTime != slotTime {
				continue
			}
			if !matchesFilters(booking, filters) {
				continue
			}
			matching = append(matching, booking)
		}

		result[i] = domain.TimeSlot{
			Time:        slotTime,
			IsAvailable: len(matching) == 0,
			Bookings:    matching,
		}
	}

	return result
}

// matchesFilters проверяет бронирование по всем заданным фильтрам (AND)
// Незаданный фильтр ограничений не накладывает
func matchesFilters(booking *domain.Booking, filters domain.BookingFilters) bool {
	if filters.Status != nil && booking.Status != *filters.Status {
		return false
	}
	if filters.StaffID != nil && booking.StaffID != *filters.StaffID {
		return false
	}
	if filters.ServiceID != nil && !booking.HasService(*filters.ServiceID) {
		return false
	}
	if filters.SearchQuery != nil && *filters.SearchQuery != "" {
		if !strings.Contains(
			strings.ToLower(booking.CustomerName),
			strings.ToLower(*filters.SearchQuery),
		) {
			return false
		}
	}
	return true
}
