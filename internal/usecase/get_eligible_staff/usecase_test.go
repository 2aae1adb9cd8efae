package get_eligible_staff

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

type stubStaffRepo struct {
	getBySalon       func(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error)
	listBreakWindows func(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error)
}

func (s *stubStaffRepo) GetBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
	return s.getBySalon(ctx, salonID, onlyActive)
}

func (s *stubStaffRepo) ListBreakWindows(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
	return s.listBreakWindows(ctx, salonID, date)
}

func testRoster() []*domain.StaffMember {
	return []*domain.StaffMember{
		{ID: 1, SalonID: 10, Name: "Алина", IsActive: true},
		{ID: 2, SalonID: 10, Name: "Марина", IsActive: true},
		{ID: 3, SalonID: 10, Name: "Ольга", IsActive: false},
	}
}

func TestExecute_InvalidSalonID(t *testing.T) {
	uc := NewUseCase(&stubStaffRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FailOpenReturnsFullRoster(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero date",
			req:  &Request{SalonID: 10, StartTime: "10:00"},
		},
		{
			name: "empty start time",
			req:  &Request{SalonID: 10, Date: time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "invalid start time",
			req: &Request{
				SalonID:   10,
				Date:      time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
				StartTime: "26:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaksCalled := false
			repo := &stubStaffRepo{
				getBySalon: func(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
					// В отказоустойчивом режиме запрашивается полный состав
					assert.False(t, onlyActive)
					return testRoster(), nil
				},
				listBreakWindows: func(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
					breaksCalled = true
					return nil, nil
				},
			}

			uc := NewUseCase(repo, nopLogger{})
			resp, err := uc.Execute(context.Background(), tt.req)

			require.NoError(t, err)
			assert.False(t, breaksCalled, "break windows must not be fetched in degraded mode")
			require.Len(t, resp.Staff, 3)
			assert.False(t, resp.Staff[2].IsActive)
		})
	}
}

func TestExecute_FiltersInactiveAndOnBreak(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	repo := &stubStaffRepo{
		getBySalon: func(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
			return testRoster(), nil
		},
		listBreakWindows: func(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
			return []*domain.BreakWindow{
				{StaffID: 1, Date: day, StartTime: "10:00", EndTime: "11:00"},
			}, nil
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   10,
		Date:      day,
		StartTime: "10:30",
	})

	require.NoError(t, err)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(2), resp.Staff[0].ID)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubStaffRepo{
		getBySalon: func(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SalonID: 10})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SupersededByNewerRequest(t *testing.T) {
	day := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	var uc *UseCase
	var nestedResp *Response
	nested := false

	repo := &stubStaffRepo{
		getBySalon: func(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
			// Пока первый запрос ждёт репозиторий, приходит более новый
			if !nested {
				nested = true
				resp, err := uc.Execute(ctx, &Request{SalonID: 10, Date: day, StartTime: "11:00"})
				require.NoError(t, err)
				nestedResp = resp
			}
			return testRoster(), nil
		},
		listBreakWindows: func(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
			return nil, nil
		},
	}

	uc = NewUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SalonID: 10, Date: day, StartTime: "10:00"})

	assert.ErrorIs(t, err, ErrSuperseded)
	require.NotNil(t, nestedResp)
	assert.Len(t, nestedResp.Staff, 2)
}
