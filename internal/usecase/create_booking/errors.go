package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_booking: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов салона
	ErrInvalidTimeSlot = errors.New("create_booking: time is outside the salon slot grid")

	// ErrSlotNotAvailable возвращается, когда мастер уже занят на это время
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStaffNotEligible возвращается, когда мастер неактивен или у него перерыв
	ErrStaffNotEligible = errors.New("create_booking: staff member is not eligible for this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
