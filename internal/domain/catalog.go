package domain

import "time"

// Service represents a single salon service from the catalog.
// Duration comes in two historical forms: numeric minutes in DurationMinutes,
// or free text in DurationText ("45 minutes", "2 hours"). DurationMinutes
// wins when both are set.
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Price           float64
	DurationMinutes int
	DurationText    string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComboOffer represents a bundled set of services sold at an aggregate price.
// Contributes its own duration to a booking, same dual form as Service.
type ComboOffer struct {
	ID              int64
	SalonID         int64
	Name            string
	ServiceIDs      []int64
	Price           float64
	DurationMinutes int
	DurationText    string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
