package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
)

// UseCase use case для получения расписания салона на день
type UseCase struct {
	salonRepo   SalonRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(salonRepo SalonRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		salonRepo:   salonRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения расписания на день
// Закрытый день и некорректно настроенное расписание - не ошибки:
// возвращается пустая сетка слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: salon=%d, date=%s", req.SalonID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки расписания салона
	// Отсутствие настроек - штатная ситуация, движок подставит значения по умолчанию
	timings, err := uc.salonRepo.GetTimings(ctx, req.SalonID)
	if err != nil {
		if !errors.Is(err, salonRepo.ErrTimingsNotFound) {
			uc.logger.Error("GetDaySchedule: failed to get timings for salon=%d: %v", req.SalonID, err)
			return nil, fmt.Errorf("%w: failed to get salon timings: %v", ErrInternal, err)
		}
		timings = &domain.SalonTimings{SalonID: req.SalonID}
	}

	// 3. Генерируем сетку слотов
	slots := schedule.DaySlots(req.Date, *timings)
	if len(slots) == 0 {
		uc.logger.Info("GetDaySchedule: salon=%d closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			SalonID: req.SalonID,
			Date:    req.Date,
			IsOpen:  false,
			Slots:   []domain.TimeSlot{},
		}, nil
	}

	// 4. Получаем активные бронирования на эту дату
	// Фильтры занятости накладываются движком, а не запросом - так слот с
	// чужим бронированием остаётся свободным в отфильтрованном представлении
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
		SalonID:   req.SalonID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Накладываем занятость на сетку
	resolved := schedule.ResolveOccupancy(slots, bookings, req.Date, req.Filters)

	uc.logger.Info("GetDaySchedule: salon=%d, date=%s, slots=%d, bookings=%d",
		req.SalonID, req.Date.Format(domain.DateFormat), len(resolved), len(bookings))

	return &Response{
		SalonID: req.SalonID,
		Date:    req.Date,
		IsOpen:  true,
		Slots:   resolved,
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
