package get_week_overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

// stubBookingRepo повторяет фильтрацию статусов реального репозитория:
// без IncludeInactive отменённые бронирования отбрасываются
type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// 7 сентября 2026 - понедельник
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SalonID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 10, Date: monday})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CountsCancelledBookings(t *testing.T) {
	// Счётчик дня не зависит от статуса: отменённое бронирование тоже считается
	repo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, SalonID: 10, BookingDate: monday, StartTime: "10:00", Status: domain.StatusConfirmed},
			{ID: 2, SalonID: 10, BookingDate: monday, StartTime: "12:00", Status: domain.StatusCancelled},
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: monday}

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 10, Date: monday})

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	// Неделя с воскресенья: понедельник - второй день
	assert.Equal(t, monday, resp.Days[1].Date)
	assert.Equal(t, 2, resp.Days[1].BookingCount)
	assert.True(t, resp.Days[1].IsToday)
	assert.True(t, resp.Days[1].IsSelected)
}
