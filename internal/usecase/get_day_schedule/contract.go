package get_day_schedule

import (
	"context"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetTimings(ctx context.Context, salonID int64) (*domain.SalonTimings, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
