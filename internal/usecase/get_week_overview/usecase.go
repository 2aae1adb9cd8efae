package get_week_overview

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
)

// UseCase use case для получения недельного календарного обзора
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case недельного обзора
// Неделя определяется запрошенной датой: от воскресенья до субботы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekOverview: salon=%d, date=%s", req.SalonID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekOverview: validation failed: %v", err)
		return nil, err
	}

	// 2. Границы отображаемой недели
	weekStart := dateOnly(req.Date).AddDate(0, 0, -int(req.Date.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	// 3. Получаем бронирования недели одним запросом
	// Счётчики дней считаются по всем бронированиям, включая отменённые
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
		SalonID:         req.SalonID,
		StartDate:       &weekStart,
		EndDate:         &weekEnd,
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to get bookings for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Собираем календарные дни
	days := schedule.WeekDays(req.Date, req.Date, uc.timeProvider.Now(), bookings)

	uc.logger.Info("GetWeekOverview: salon=%d, week=%s..%s, bookings=%d",
		req.SalonID, weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat), len(bookings))

	return &Response{
		SalonID: req.SalonID,
		Days:    days,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
