package domain

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking.
// The set is closed and lower-case everywhere in the system.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a scheduled salon appointment
type Booking struct {
	ID              int64
	SalonID         int64
	CustomerID      int64
	StaffID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         *types.TimeString // optional, derived via the duration fallback chain when absent
	DurationMinutes int

	ServiceIDs    []int64
	ComboOfferIDs []int64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Denormalized data for history
	CustomerName string
	ServiceNames []string
	TotalPrice   float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking's date/time may change
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinished returns true once the appointment is over or cancelled
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// HasService reports whether the booking includes the given service
func (b *Booking) HasService(serviceID int64) bool {
	for _, id := range b.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// SalonBookingsFilter фильтр для получения бронирований салона
// Все поля, кроме SalonID, опциональны и объединяются по AND
type SalonBookingsFilter struct {
	SalonID         int64
	StaffID         *int64
	ServiceID       *int64
	Status          *BookingStatus
	StartDate       *time.Time
	EndDate         *time.Time
	SearchQuery     *string // подстрочный поиск по имени клиента
	IncludeInactive bool
}

// BookingFilters предикаты занятости слотов
// Отсутствующее поле не накладывает ограничений; заданные объединяются по AND
type BookingFilters struct {
	Status      *BookingStatus
	StaffID     *int64
	ServiceID   *int64
	SearchQuery *string
}
