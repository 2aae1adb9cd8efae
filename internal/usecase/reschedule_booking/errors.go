package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается для завершённых и отменённых бронирований
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrInvalidDate возвращается при дате переноса в прошлом
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrSalonClosed возвращается, когда салон закрыт в новую дату
	ErrSalonClosed = errors.New("reschedule_booking: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда новое время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("reschedule_booking: time is outside the salon slot grid")

	// ErrSlotNotAvailable возвращается, когда мастер уже занят на новое время
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrStaffNotEligible возвращается, когда у мастера перерыв на новое время
	ErrStaffNotEligible = errors.New("reschedule_booking: staff member is not eligible for this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
