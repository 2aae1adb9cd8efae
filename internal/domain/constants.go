package domain

import "github.com/m04kA/SalonMS-BookingService/pkg/types"

// Default scheduling values
const (
	// SlotGranularityMinutes фиксированный шаг сетки слотов
	SlotGranularityMinutes = 30

	// DefaultDurationMinutes длительность бронирования, когда её не удалось
	// вывести ни из времени, ни из услуг
	DefaultDurationMinutes = 30

	DefaultOpeningTime = types.TimeString("09:00")
	DefaultClosingTime = types.TimeString("20:00")
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSearchQueryLength        = 100
	MaxCustomerNameLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при подсчёте занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ValidStatuses полный закрытый набор статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ValidPaymentStatuses полный набор статусов оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentUnpaid,
	PaymentPaid,
	PaymentRefunded,
}
