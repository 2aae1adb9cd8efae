package create_booking

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/SalonMS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SalonID       int64   `json:"salonId"`
	StaffID       int64   `json:"staffId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	EndTime       string  `json:"endTime,omitempty"`
	ServiceIDs    []int64 `json:"serviceIds,omitempty"`
	ComboOfferIDs []int64 `json:"comboOfferIds,omitempty"`
	CustomerName  string  `json:"customerName,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	SalonID         int64    `json:"salonId"`
	CustomerID      int64    `json:"customerId"`
	StaffID         int64    `json:"staffId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"paymentStatus"`
	CustomerName    string   `json:"customerName"`
	ServiceNames    []string `json:"serviceNames"`
	TotalPrice      float64  `json:"totalPrice"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID приходит из контекста авторизации, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	// Явное время окончания опционально
	var endTime types.TimeString
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		SalonID:       r.SalonID,
		CustomerID:    customerID,
		StaffID:       r.StaffID,
		Date:          bookingDate,
		StartTime:     startTime,
		EndTime:       endTime,
		ServiceIDs:    r.ServiceIDs,
		ComboOfferIDs: r.ComboOfferIDs,
		CustomerName:  r.CustomerName,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		CustomerID:      resp.CustomerID,
		StaffID:         resp.StaffID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		CustomerName:    resp.CustomerName,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
