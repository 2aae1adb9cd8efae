package get_salon_timings

import (
	"context"

	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig/models"
)

type SalonConfigService interface {
	GetTimings(ctx context.Context, salonID int64) (*models.TimingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
