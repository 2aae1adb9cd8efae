package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/ptr"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

func TestResolveOccupancy_MarksBookedSlot(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := []types.TimeString{"09:00", "09:30", "10:00"}

	bookings := []*domain.Booking{
		{ID: 1, StaffID: 1, BookingDate: target, StartTime: "09:30", Status: domain.StatusConfirmed},
	}

	result := ResolveOccupancy(slots, bookings, target, domain.BookingFilters{})

	require.Len(t, result, 3)
	assert.True(t, result[0].IsAvailable)
	assert.False(t, result[1].IsAvailable)
	require.Len(t, result[1].Bookings, 1)
	assert.Equal(t, int64(1), result[1].Bookings[0].ID)
	assert.True(t, result[2].IsAvailable)
}

func TestResolveOccupancy_OtherDayDoesNotOccupy(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := []types.TimeString{"10:00"}

	// То же время, соседний день - слот свободен
	bookings := []*domain.Booking{
		{ID: 1, BookingDate: target.AddDate(0, 0, 1), StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	result := ResolveOccupancy(slots, bookings, target, domain.BookingFilters{})
	require.Len(t, result, 1)
	assert.True(t, result[0].IsAvailable)
}

func TestResolveOccupancy_FilterConjunction(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := []types.TimeString{"10:00"}

	// Бронь A: мастер 1, услуга 100, confirmed
	bookings := []*domain.Booking{
		{
			ID:          1,
			StaffID:     1,
			ServiceIDs:  []int64{100},
			BookingDate: target,
			StartTime:   "10:00",
			Status:      domain.StatusConfirmed,
		},
	}

	tests := []struct {
		name          string
		filters       domain.BookingFilters
		wantAvailable bool
	}{
		{
			name:          "no filters - slot occupied",
			filters:       domain.BookingFilters{},
			wantAvailable: false,
		},
		{
			name:          "matching staff filter - still occupied",
			filters:       domain.BookingFilters{StaffID: ptr.Ptr(int64(1))},
			wantAvailable: false,
		},
		{
			// Другой мастер свободен в 10:00, хотя бронь A существует
			name:          "different staff filter - slot opens up",
			filters:       domain.BookingFilters{StaffID: ptr.Ptr(int64(2))},
			wantAvailable: true,
		},
		{
			name:          "different service filter - slot opens up",
			filters:       domain.BookingFilters{ServiceID: ptr.Ptr(int64(200))},
			wantAvailable: true,
		},
		{
			name:          "different status filter - slot opens up",
			filters:       domain.BookingFilters{Status: ptr.Ptr(domain.StatusPending)},
			wantAvailable: true,
		},
		{
			name: "all filters matching - occupied",
			filters: domain.BookingFilters{
				Status:    ptr.Ptr(domain.StatusConfirmed),
				StaffID:   ptr.Ptr(int64(1)),
				ServiceID: ptr.Ptr(int64(100)),
			},
			wantAvailable: false,
		},
		{
			// Конъюнкция: один несовпавший фильтр освобождает слот
			name: "one mismatched filter among matching ones - slot opens up",
			filters: domain.BookingFilters{
				Status:    ptr.Ptr(domain.StatusConfirmed),
				StaffID:   ptr.Ptr(int64(2)),
				ServiceID: ptr.Ptr(int64(100)),
			},
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveOccupancy(slots, bookings, target, tt.filters)
			require.Len(t, result, 1)
			assert.Equal(t, tt.wantAvailable, result[0].IsAvailable)
		})
	}
}

func TestResolveOccupancy_SearchQueryFilter(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := []types.TimeString{"10:00", "11:00"}

	bookings := []*domain.Booking{
		{ID: 1, CustomerName: "Anna Petrova", BookingDate: target, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, CustomerName: "Boris Ivanov", BookingDate: target, StartTime: "11:00", Status: domain.StatusConfirmed},
	}

	result := ResolveOccupancy(slots, bookings, target, domain.BookingFilters{
		SearchQuery: ptr.Ptr("anna"),
	})

	require.Len(t, result, 2)
	assert.False(t, result[0].IsAvailable) // Anna matches, case-insensitive
	assert.True(t, result[1].IsAvailable)  // Boris filtered out
}

func TestResolveOccupancy_PreservesOrderAndLength(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := DaySlots(target, domain.SalonTimings{})

	result := ResolveOccupancy(slots, nil, target, domain.BookingFilters{})

	require.Len(t, result, len(slots))
	for i, slot := range result {
		assert.Equal(t, slots[i], slot.Time)
		assert.True(t, slot.IsAvailable)
		assert.Empty(t, slot.Bookings)
	}
}

func TestResolveOccupancy_MultipleBookingsOneSlot(t *testing.T) {
	target := date(2025, time.October, 13)
	slots := []types.TimeString{"10:00"}

	// Модель терпит несколько броней в одном слоте
	bookings := []*domain.Booking{
		{ID: 1, StaffID: 1, BookingDate: target, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, StaffID: 2, BookingDate: target, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	result := ResolveOccupancy(slots, bookings, target, domain.BookingFilters{})
	require.Len(t, result, 1)
	assert.False(t, result[0].IsAvailable)
	assert.Len(t, result[0].Bookings, 2)
}
