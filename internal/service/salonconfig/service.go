package salonconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig/models"
)

// Service сервис для работы с расписанием салона
type Service struct {
	salonRepo SalonRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		logger:    logger,
	}
}

// GetTimings получает расписание салона
// Ненастроенное расписание - штатная ситуация: возвращаются значения
// по умолчанию (09:00-20:00, без выходных)
func (s *Service) GetTimings(ctx context.Context, salonID int64) (*models.TimingsResponse, error) {
	s.logger.Info("GetTimings: fetching timings for salon=%d", salonID)

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	timings, err := s.salonRepo.GetTimings(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrTimingsNotFound) {
			s.logger.Info("GetTimings: salon=%d has no timings, returning defaults", salonID)
			return models.FromDomainTimings(&domain.SalonTimings{SalonID: salonID}), nil
		}
		s.logger.Error("GetTimings: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetTimings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimings(timings), nil
}

// UpdateTimings обновляет расписание салона
// На запись расписание валидируется строго: корректный формат HH:MM,
// открытие строго раньше закрытия, дни недели 0-6. Чтение при этом
// терпимо к ранее сохранённым некорректным данным
func (s *Service) UpdateTimings(ctx context.Context, req *models.UpdateTimingsRequest) (*models.TimingsResponse, error) {
	s.logger.Info("UpdateTimings: updating timings for salon=%d by user=%d: %s-%s, days=%v",
		req.SalonID, req.UserID, req.OpeningTime, req.ClosingTime, req.WorkingDays)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateTimings: validation failed for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	timings, err := s.salonRepo.UpsertTimings(ctx, req.ToDomainTimings())
	if err != nil {
		s.logger.Error("UpdateTimings: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateTimings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTimings: successfully updated timings for salon=%d", req.SalonID)
	return models.FromDomainTimings(timings), nil
}

// validateUpdateRequest валидирует запрос на обновление расписания
func validateUpdateRequest(req *models.UpdateTimingsRequest) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	timings := req.ToDomainTimings()

	if err := timings.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
	}
	if err := timings.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
	}

	if !timings.OpeningTime.IsBefore(timings.ClosingTime) {
		return ErrInvalidTimeRange
	}

	for _, day := range req.WorkingDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: working day %d is out of range 0-6", ErrInvalidInput, day)
		}
	}

	return nil
}
