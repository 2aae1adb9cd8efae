package get_week_overview

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

// Request модель запроса недельного обзора
type Request struct {
	SalonID int64     // ID салона
	Date    time.Time // Выбранная дата - определяет отображаемую неделю
}

// Response модель ответа с календарной неделей
type Response struct {
	SalonID int64                // ID салона
	Days    []domain.CalendarDay // 7 дней недели, воскресенье - суббота
}
