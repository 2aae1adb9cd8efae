package reschedule_booking

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID переносимого бронирования
	Date      time.Time        // Новая дата
	StartTime types.TimeString // Новое время начала
	EndTime   types.TimeString // Явное новое время окончания (опционально)
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID              int64            // ID бронирования
	SalonID         int64            // ID салона
	CustomerID      int64            // ID клиента
	StaffID         int64            // ID мастера
	BookingDate     time.Time        // Новая дата бронирования
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
}
