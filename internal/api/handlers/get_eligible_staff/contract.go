package get_eligible_staff

import (
	"context"

	getEligibleStaff "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_eligible_staff"
)

type GetEligibleStaffUseCase interface {
	Execute(ctx context.Context, req *getEligibleStaff.Request) (*getEligibleStaff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
