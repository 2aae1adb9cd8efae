package get_eligible_staff

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
)

// UseCase use case для подбора мастеров, доступных на выбранное время
//
// Форма бронирования шлёт запрос на каждое изменение даты/времени, ответы
// могут приходить не по порядку. Побеждает последний запрос: устаревшие
// выполнения завершаются ErrSuperseded и их результат не отображается
type UseCase struct {
	staffRepo StaffRepository
	logger    Logger

	// Монотонный счётчик поколений запросов
	generation atomic.Int64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(staffRepo StaffRepository, logger Logger) *UseCase {
	return &UseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Execute выполняет use case подбора мастеров
// При некорректных дате/времени деградирует к полному списку сотрудников
// салона - пустой список мастеров хуже для формы, чем избыточный
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEligibleStaff: salon=%d, date=%s, time=%s, services=%d, combos=%d",
		req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime,
		len(req.ServiceIDs), len(req.ComboOfferIDs))

	// 1. Регистрируем поколение этого запроса
	gen := uc.generation.Add(1)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetEligibleStaff: validation failed: %v", err)
		return nil, err
	}

	// Отказоустойчивый режим: без валидных даты/времени перерывы не учитываем
	failOpen := req.Date.IsZero() || req.StartTime.IsZero() || req.StartTime.Validate() != nil
	if failOpen {
		uc.logger.Warn("GetEligibleStaff: salon=%d, degraded to full roster (date/time unusable)", req.SalonID)
	}

	// 3. Получаем состав салона
	// В отказоустойчивом режиме возвращаем полный состав, включая неактивных
	roster, err := uc.staffRepo.GetBySalon(ctx, req.SalonID, false)
	if err != nil {
		uc.logger.Error("GetEligibleStaff: failed to get staff for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	allStaff := make([]domain.StaffMember, 0, len(roster))
	for _, m := range roster {
		allStaff = append(allStaff, *m)
	}

	// 4. Получаем перерывы на запрошенную дату
	breaks := make([]domain.BreakWindow, 0)
	if !failOpen {
		windows, err := uc.staffRepo.ListBreakWindows(ctx, req.SalonID, req.Date)
		if err != nil {
			uc.logger.Error("GetEligibleStaff: failed to get break windows for salon=%d: %v", req.SalonID, err)
			return nil, fmt.Errorf("%w: failed to get break windows: %v", ErrInternal, err)
		}
		for _, w := range windows {
			breaks = append(breaks, *w)
		}
	}

	// 5. Фильтруем состав по активности и перерывам
	eligible := schedule.EligibleStaff(req.Date, req.StartTime, req.ServiceIDs, req.ComboOfferIDs, allStaff, breaks)

	// 6. Отбрасываем устаревший результат, если за время выполнения
	// пришёл более новый запрос
	if uc.generation.Load() != gen {
		uc.logger.Info("GetEligibleStaff: salon=%d, generation %d superseded", req.SalonID, gen)
		return nil, ErrSuperseded
	}

	uc.logger.Info("GetEligibleStaff: salon=%d, eligible=%d of %d", req.SalonID, len(eligible), len(allStaff))

	return &Response{
		SalonID: req.SalonID,
		Staff:   eligible,
	}, nil
}

// validateRequest валидирует входные данные запроса
// Дата и время не обязательны - их отсутствие переводит подбор
// в отказоустойчивый режим, а не в ошибку
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	return nil
}
