package salonconfig

import (
	"context"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetTimings(ctx context.Context, salonID int64) (*domain.SalonTimings, error)
	UpsertTimings(ctx context.Context, timings *domain.SalonTimings) (*domain.SalonTimings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
