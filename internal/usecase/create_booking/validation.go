package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Явное время окончания опционально, но если задано - должно парситься
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotExists проверяет, что время начала попадает в сетку слотов
func validateSlotExists(slots []types.TimeString, startTime types.TimeString) error {
	for _, slot := range slots {
		if slot == startTime {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}

// countStaffOverlap подсчитывает активные бронирования мастера,
// пересекающиеся с интервалом [startTime, startTime+duration)
func countStaffOverlap(
	staffID int64,
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	excludeBookingID int64,
) int {
	slotEnd := schedule.EndTime(startTime, durationMinutes)
	if slotEnd.IsZero() {
		return 0
	}

	count := 0
	for _, booking := range bookings {
		if booking.ID == excludeBookingID {
			continue
		}
		if booking.StaffID != staffID {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		bookingEnd := schedule.EndTime(booking.StartTime, booking.DurationMinutes)
		if bookingEnd.IsZero() {
			continue
		}

		// Пересечение по строгим неравенствам, граничные случаи не считаются
		if booking.StartTime.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			count++
		}
	}

	return count
}

// staffIsEligible проверяет наличие мастера в списке доступных
func staffIsEligible(eligible []domain.StaffMember, staffID int64) bool {
	for _, m := range eligible {
		if m.ID == staffID {
			return true
		}
	}
	return false
}
