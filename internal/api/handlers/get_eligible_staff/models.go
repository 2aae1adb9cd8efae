package get_eligible_staff

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	getEligibleStaff "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_eligible_staff"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// StaffResponse HTTP модель мастера
type StaffResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	IsActive        bool     `json:"isActive"`
	Specializations []string `json:"specializations,omitempty"`
}

// EligibleStaffResponse HTTP модель списка доступных мастеров
type EligibleStaffResponse struct {
	SalonID int64           `json:"salonId"`
	Staff   []StaffResponse `json:"staff"`
}

// parseQuery разбирает query-параметры в модель use case
// Дата и время опциональны: их отсутствие или некорректность переводит
// подбор в отказоустойчивый режим на стороне use case
func parseQuery(salonID int64, query url.Values) *getEligibleStaff.Request {
	req := &getEligibleStaff.Request{
		SalonID:       salonID,
		ServiceIDs:    parseIDList(query.Get("serviceIds")),
		ComboOfferIDs: parseIDList(query.Get("comboIds")),
	}

	if raw := query.Get("date"); raw != "" {
		if date, err := time.Parse(domain.DateFormat, raw); err == nil {
			req.Date = date
		}
	}
	if raw := query.Get("time"); raw != "" {
		// Невалидное время остаётся в запросе как есть - use case
		// сам деградирует к полному списку
		req.StartTime = types.TimeString(raw)
	}

	return req
}

// parseIDList разбирает список ID через запятую ("1,2,3")
// Нечисловые элементы молча пропускаются
func parseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEligibleStaff.Response) *EligibleStaffResponse {
	out := &EligibleStaffResponse{
		SalonID: resp.SalonID,
		Staff:   make([]StaffResponse, 0, len(resp.Staff)),
	}

	for _, member := range resp.Staff {
		out.Staff = append(out.Staff, StaffResponse{
			ID:              member.ID,
			Name:            member.Name,
			IsActive:        member.IsActive,
			Specializations: member.Specializations,
		})
	}

	return out
}
