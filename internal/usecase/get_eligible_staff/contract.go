package get_eligible_staff

import (
	"context"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error)
	ListBreakWindows(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
