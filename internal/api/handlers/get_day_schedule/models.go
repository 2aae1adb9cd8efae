package get_day_schedule

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	getDaySchedule "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_day_schedule"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time        string            `json:"time"` // "10:00"
	IsAvailable bool              `json:"isAvailable"`
	Bookings    []BookingResponse `json:"bookings,omitempty"`
}

// BookingResponse краткая HTTP модель бронирования внутри слота
type BookingResponse struct {
	ID           int64    `json:"id"`
	StaffID      int64    `json:"staffId"`
	CustomerName string   `json:"customerName"`
	ServiceNames []string `json:"serviceNames"`
	Status       string   `json:"status"`
}

// ScheduleResponse HTTP модель расписания на день
type ScheduleResponse struct {
	SalonID int64          `json:"salonId"`
	Date    string         `json:"date"` // "2025-10-15"
	IsOpen  bool           `json:"isOpen"`
	Slots   []SlotResponse `json:"slots"`
}

// parseQuery разбирает query-параметры в модель use case
// Фильтры опциональны; некорректная дата - ошибка парсинга
func parseQuery(salonID int64, query url.Values) (*getDaySchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &getDaySchedule.Request{
		SalonID: salonID,
		Date:    date,
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		req.Filters.Status = &status
	}
	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Filters.StaffID = &staffID
	}
	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Filters.ServiceID = &serviceID
	}
	if raw := query.Get("q"); raw != "" {
		req.Filters.SearchQuery = &raw
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		SalonID: resp.SalonID,
		Date:    resp.Date.Format(domain.DateFormat),
		IsOpen:  resp.IsOpen,
		Slots:   make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		slotResp := SlotResponse{
			Time:        slot.Time.String(),
			IsAvailable: slot.IsAvailable,
		}
		for _, booking := range slot.Bookings {
			slotResp.Bookings = append(slotResp.Bookings, BookingResponse{
				ID:           booking.ID,
				StaffID:      booking.StaffID,
				CustomerName: booking.CustomerName,
				ServiceNames: booking.ServiceNames,
				Status:       string(booking.Status),
			})
		}
		out.Slots = append(out.Slots, slotResp)
	}

	return out
}
