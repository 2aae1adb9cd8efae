package update_salon_timings

import (
	"context"

	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig/models"
)

type SalonConfigService interface {
	UpdateTimings(ctx context.Context, req *models.UpdateTimingsRequest) (*models.TimingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
