package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/booking"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SalonMS-BookingService/internal/schedule"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// UseCase use case для переноса бронирования на новые дату/время
type UseCase struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	staffRepo    StaffRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		staffRepo:    staffRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
// Повторяет все проверки создания (рабочий день, сетка слотов, занятость
// мастера, перерывы) в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что новая дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Booking
	var endTime types.TimeString

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Переносить можно только ожидающие и подтверждённые бронирования
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrCannotReschedule
		}

		// 3.3. Выводим новую длительность: явное время окончания приоритетнее,
		// иначе сохраняется текущая длительность бронирования
		durationMinutes := booking.DurationMinutes
		if !req.EndTime.IsZero() {
			if diff, err := req.EndTime.DiffMinutes(req.StartTime); err == nil && diff > 0 {
				durationMinutes = diff
			}
		}
		if durationMinutes <= 0 {
			durationMinutes = domain.DefaultDurationMinutes
		}
		endTime = schedule.EndTime(req.StartTime, durationMinutes)

		// 3.4. Проверяем, что салон работает и время попадает в сетку слотов
		timings, err := uc.salonRepo.GetTimings(txCtx, booking.SalonID)
		if err != nil {
			if !errors.Is(err, salonRepo.ErrTimingsNotFound) {
				uc.logger.Error("RescheduleBooking: failed to get timings: %v", err)
				return fmt.Errorf("%w: failed to get salon timings: %v", ErrInternal, err)
			}
			timings = &domain.SalonTimings{SalonID: booking.SalonID}
		}

		slots := schedule.DaySlots(req.Date, *timings)
		if len(slots) == 0 {
			uc.logger.Warn("RescheduleBooking: salon=%d closed on %s", booking.SalonID, req.Date.Format(domain.DateFormat))
			return ErrSalonClosed
		}
		if !slotExists(slots, req.StartTime) {
			uc.logger.Warn("RescheduleBooking: time %s is outside the slot grid", req.StartTime)
			return ErrInvalidTimeSlot
		}

		// 3.5. Получаем активные бронирования новой даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetBySalonWithFilter(txCtx, domain.SalonBookingsFilter{
			SalonID:   booking.SalonID,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.6. Мастер должен быть свободен на весь новый интервал
		// Само переносимое бронирование из подсчёта исключается
		if overlap := countStaffOverlap(booking.StaffID, req.StartTime, durationMinutes, bookings, booking.ID); overlap > 0 {
			uc.logger.Warn("RescheduleBooking: staff=%d already has %d booking(s) overlapping %s",
				booking.StaffID, overlap, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 3.7. Проверяем перерывы мастера на новое время
		roster, err := uc.staffRepo.GetBySalon(txCtx, booking.SalonID, false)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get staff: %v", err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		windows, err := uc.staffRepo.ListBreakWindows(txCtx, booking.SalonID, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get break windows: %v", err)
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

		eligible := schedule.EligibleStaff(req.Date, req.StartTime, booking.ServiceIDs, booking.ComboOfferIDs, allStaff, breaks)
		if !staffInList(eligible, booking.StaffID) {
			uc.logger.Warn("RescheduleBooking: staff=%d is not eligible for %s %s",
				booking.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrStaffNotEligible
		}

		// 3.8. Сохраняем перенос
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.Date, req.StartTime, &endTime, durationMinutes); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		booking.BookingDate = req.Date
		booking.StartTime = req.StartTime
		booking.EndTime = &endTime
		booking.DurationMinutes = durationMinutes
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

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
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// validateDate проверяет, что дата переноса не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// slotExists проверяет, что время начала попадает в сетку слотов
func slotExists(slots []types.TimeString, startTime types.TimeString) bool {
	for _, slot := range slots {
		if slot == startTime {
			return true
		}
	}
	return false
}

// countStaffOverlap подсчитывает активные бронирования мастера,
// пересекающиеся с интервалом [startTime, startTime+duration)
func countStaffOverlap(
	staffID int64,
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	excludeBookingID int64,
) int {
	slotEnd := schedule.EndTime(startTime, durationMinutes)
	if slotEnd.IsZero() {
		return 0
	}

	count := 0
	for _, booking := range bookings {
		if booking.ID == excludeBookingID {
			continue
		}
		if booking.StaffID != staffID {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		bookingEnd := schedule.EndTime(booking.StartTime, booking.DurationMinutes)
		if bookingEnd.IsZero() {
			continue
		}

		if booking.StartTime.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			count++
		}
	}

	return count
}

// staffInList проверяет наличие мастера в списке доступных
func staffInList(staff []domain.StaffMember, staffID int64) bool {
	for _, m := range staff {
		if m.ID == staffID {
			return true
		}
	}
	return false
}
