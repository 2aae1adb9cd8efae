package get_eligible_staff

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// Request модель запроса подбора мастеров
type Request struct {
	SalonID       int64            // ID салона
	Date          time.Time        // Дата бронирования (нулевая - подбор без учёта перерывов)
	StartTime     types.TimeString // Время начала (пустое - подбор без учёта перерывов)
	ServiceIDs    []int64          // Выбранные услуги
	ComboOfferIDs []int64          // Выбранные комбо-предложения
}

// Response модель ответа со списком доступных мастеров
type Response struct {
	SalonID int64                // ID салона
	Staff   []domain.StaffMember // Мастера, доступные на запрошенное время
}
