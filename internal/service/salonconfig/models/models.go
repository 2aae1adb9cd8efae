package models

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// Request модели

// UpdateTimingsRequest запрос на обновление расписания салона
type UpdateTimingsRequest struct {
	UserID      int64  `json:"userId"`
	SalonID     int64  `json:"salonId"`
	OpeningTime string `json:"openingTime"` // "09:00"
	ClosingTime string `json:"closingTime"` // "20:00"
	WorkingDays []int  `json:"workingDays"` // 0=воскресенье .. 6=суббота
}

// ToDomainTimings конвертирует request в domain модель
// Формат времени валидируется на уровне сервиса
func (r *UpdateTimingsRequest) ToDomainTimings() *domain.SalonTimings {
	return &domain.SalonTimings{
		SalonID:     r.SalonID,
		OpeningTime: types.TimeString(r.OpeningTime),
		ClosingTime: types.TimeString(r.ClosingTime),
		WorkingDays: r.WorkingDays,
	}
}

// Response модели

// TimingsResponse ответ с расписанием салона
type TimingsResponse struct {
	SalonID     int64     `json:"salonId"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	WorkingDays []int     `json:"workingDays"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainTimings конвертирует domain модель в DTO
// Пустые поля заменяются значениями по умолчанию - читающая сторона
// всегда видит полное расписание
func FromDomainTimings(t *domain.SalonTimings) *TimingsResponse {
	if t == nil {
		return nil
	}

	filled := t.WithDefaults()
	return &TimingsResponse{
		SalonID:     filled.SalonID,
		OpeningTime: filled.OpeningTime.String(),
		ClosingTime: filled.ClosingTime.String(),
		WorkingDays: filled.WorkingDays,
		UpdatedAt:   filled.UpdatedAt,
	}
}
