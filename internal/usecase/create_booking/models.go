package create_booking

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SalonID    int64            // ID салона
	CustomerID int64            // ID клиента
	StaffID    int64            // ID выбранного мастера
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	EndTime    types.TimeString // Явное время окончания (опционально, приоритетнее услуг)

	ServiceIDs    []int64 // Выбранные услуги
	ComboOfferIDs []int64 // Выбранные комбо-предложения

	CustomerName string  // Имя клиента из запроса (запасной вариант при недоступном CRM)
	Notes        *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	SalonID         int64            // ID салона
	CustomerID      int64            // ID клиента
	StaffID         int64            // ID мастера
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Вычисленное время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PaymentStatus   string           // Статус оплаты

	// Денормализованные данные
	CustomerName string   // Имя клиента
	ServiceNames []string // Названия выбранных услуг и комбо
	TotalPrice   float64  // Суммарная цена
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
