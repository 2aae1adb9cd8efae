package get_day_schedule

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

// Request модель запроса расписания на день
type Request struct {
	SalonID int64                 // ID салона
	Date    time.Time             // Запрашиваемая дата
	Filters domain.BookingFilters // Опциональные фильтры занятости (AND)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	SalonID int64             // ID салона
	Date    time.Time         // Дата расписания
	IsOpen  bool              // Работает ли салон в этот день
	Slots   []domain.TimeSlot // Сетка слотов с признаком занятости
}
