package get_week_overview

import (
	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	getWeekOverview "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_week_overview"
)

// DayResponse HTTP модель календарного дня
type DayResponse struct {
	Date         string `json:"date"` // "2025-10-15"
	Weekday      int    `json:"weekday"`
	IsToday      bool   `json:"isToday"`
	IsSelected   bool   `json:"isSelected"`
	BookingCount int    `json:"bookingCount"`
}

// WeekOverviewResponse HTTP модель недельного обзора
type WeekOverviewResponse struct {
	SalonID int64         `json:"salonId"`
	Days    []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekOverview.Response) *WeekOverviewResponse {
	out := &WeekOverviewResponse{
		SalonID: resp.SalonID,
		Days:    make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Date:         day.Date.Format(domain.DateFormat),
			Weekday:      int(day.Date.Weekday()),
			IsToday:      day.IsToday,
			IsSelected:   day.IsSelected,
			BookingCount: day.BookingCount,
		})
	}

	return out
}
