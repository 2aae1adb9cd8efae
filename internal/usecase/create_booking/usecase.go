package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	crmClient "github.com/m04kA/SalonMS-BookingService/internal/integrations/crmservice"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	staffRepo    StaffRepository
	catalogRepo  CatalogRepository
	crmClient    CRMServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	staffRepo StaffRepository,
	catalogRepo CatalogRepository,
	crmClient CRMServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		staffRepo:    staffRepo,
		catalogRepo:  catalogRepo,
		crmClient:    crmClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: salon=%d, customer=%d, staff=%d, date=%s, time=%s",
		req.SalonID, req.CustomerID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем выбранные услуги и комбо из каталога
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	combos, err := uc.catalogRepo.GetComboOffersByIDs(ctx, req.ComboOfferIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get combo offers: %v", err)
		return nil, fmt.Errorf("%w: failed to get combo offers: %v", ErrInternal, err)
	}

	// 4. Выводим длительность: явное время окончания приоритетнее суммы услуг
	durationMinutes := schedule.CalculateDuration(req.StartTime, req.EndTime, serviceItems(services), comboItems(combos))
	endTime := schedule.EndTime(req.StartTime, durationMinutes)

	// 5. Получаем карточку клиента из CRM с graceful degradation
	// При недоступном CRM бронирование создаётся с именем из запроса
	customerName := req.CustomerName
	customer, err := uc.crmClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if !errors.Is(err, crmClient.ErrCustomerNotFound) && !errors.Is(err, crmClient.ErrServiceDegraded) {
			uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
	} else if customer.Name != "" {
		customerName = customer.Name
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем настройки расписания салона
		timings, err := uc.salonRepo.GetTimings(txCtx, req.SalonID)
		if err != nil {
			if !errors.Is(err, salonRepo.ErrTimingsNotFound) {
				uc.logger.Error("CreateBooking: failed to get timings: %v", err)
				return fmt.Errorf("%w: failed to get salon timings: %v", ErrInternal, err)
			}
			timings = &domain.SalonTimings{SalonID: req.SalonID}
		}

		// 6.2. Проверяем, что салон работает и время попадает в сетку слотов
		slots := schedule.DaySlots(req.Date, *timings)
		if len(slots) == 0 {
			uc.logger.Warn("CreateBooking: salon=%d closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
			return ErrSalonClosed
		}
		if err := validateSlotExists(slots, req.StartTime); err != nil {
			uc.logger.Warn("CreateBooking: time %s is outside the slot grid", req.StartTime)
			return err
		}

		// 6.3. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetBySalonWithFilter(txCtx, domain.SalonBookingsFilter{
			SalonID:   req.SalonID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверяем, что мастер свободен на весь интервал
		if overlap := countStaffOverlap(req.StaffID, req.StartTime, durationMinutes, bookings, 0); overlap > 0 {
			uc.logger.Warn("CreateBooking: staff=%d already has %d booking(s) overlapping %s",
				req.StaffID, overlap, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 6.5. Проверяем доступность мастера: активность и перерывы
		roster, err := uc.staffRepo.GetBySalon(txCtx, req.SalonID, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get staff: %v", err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		windows, err := uc.staffRepo.ListBreakWindows(txCtx, req.SalonID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get break windows: %v", err)
			return fmt.Errorf("%w: failed to get break windows: %v", ErrInternal, err)
		}

		allStaff := make([]domain.StaffMember, 0, len(roster))
		for _, m := range roster {
			allStaff = append(allStaff, *m)
		}
		breaks := make([]domain.BreakWindow, 0, len(windows))
		for _, w := range windows {
			breaks = append(breaks, *w)
		}

		eligible := schedule.EligibleStaff(req.Date, req.StartTime, req.ServiceIDs, req.ComboOfferIDs, allStaff, breaks)
		if !staffIsEligible(eligible, req.StaffID) {
			uc.logger.Warn("CreateBooking: staff=%d is not eligible for %s %s",
				req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrStaffNotEligible
		}

		// 6.6. Создаем бронирование с денормализацией данных каталога
		booking := &domain.Booking{
			SalonID:         req.SalonID,
			CustomerID:      req.CustomerID,
			StaffID:         req.StaffID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         &endTime,
			DurationMinutes: durationMinutes,
			ServiceIDs:      req.ServiceIDs,
			ComboOfferIDs:   req.ComboOfferIDs,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentUnpaid,
			CustomerName:    customerName,
			ServiceNames:    collectNames(services, combos),
			TotalPrice:      collectPrice(services, combos),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, duration=%d", result.ID, result.DurationMinutes)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		SalonID:         result.SalonID,
		CustomerID:      result.CustomerID,
		StaffID:         result.StaffID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		CustomerName:    result.CustomerName,
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// serviceItems конвертирует услуги в элементы расчёта длительности
func serviceItems(services []*domain.Service) []schedule.Item {
	items := make([]schedule.Item, 0, len(services))
	for _, s := range services {
		items = append(items, schedule.Item{DurationMinutes: s.DurationMinutes, DurationText: s.DurationText})
	}
	return items
}

// comboItems конвертирует комбо-предложения в элементы расчёта длительности
func comboItems(combos []*domain.ComboOffer) []schedule.Item {
	items := make([]schedule.Item, 0, len(combos))
	for _, c := range combos {
		items = append(items, schedule.Item{DurationMinutes: c.DurationMinutes, DurationText: c.DurationText})
	}
	return items
}

// collectNames собирает названия услуг и комбо для денормализации
func collectNames(services []*domain.Service, combos []*domain.ComboOffer) []string {
	names := make([]string, 0, len(services)+len(combos))
	for _, s := range services {
		names = append(names, s.Name)
	}
	for _, c := range combos {
		names = append(names, c.Name)
	}
	return names
}

// collectPrice суммирует цены выбранных услуг и комбо
func collectPrice(services []*domain.Service, combos []*domain.ComboOffer) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price
	}
	for _, c := range combos {
		total += c.Price
	}
	return total
}
