package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/internal/integrations/crmservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetTimings(ctx context.Context, salonID int64) (*domain.SalonTimings, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error)
	ListBreakWindows(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
	GetComboOffersByIDs(ctx context.Context, ids []int64) ([]*domain.ComboOffer, error)
}

// CRMServiceClient интерфейс клиента для CRMService
type CRMServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*crmservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
