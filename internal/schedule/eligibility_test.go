package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
)

var testStaff = []domain.StaffMember{
	{ID: 1, Name: "Alina", IsActive: true},
	{ID: 2, Name: "Marina", IsActive: true},
	{ID: 3, Name: "Olga", IsActive: false},
}

func TestEligibleStaff_FailOpen(t *testing.T) {
	breaks := []domain.BreakWindow{
		{StaffID: 1, Date: date(2025, time.October, 13), StartTime: "10:00", EndTime: "11:00"},
	}

	tests := []struct {
		name      string
		date      time.Time
		startTime string
	}{
		{name: "zero date", date: time.Time{}, startTime: "10:00"},
		{name: "empty start time", date: date(2025, time.October, 13), startTime: ""},
		{name: "invalid start time", date: date(2025, time.October, 13), startTime: "25:99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Полный исходный список, включая неактивных - никогда не пустой
			result := EligibleStaff(tt.date, domainTime(tt.startTime), nil, nil, testStaff, breaks)
			assert.Equal(t, testStaff, result)
		})
	}
}

func TestEligibleStaff_FiltersInactive(t *testing.T) {
	result := EligibleStaff(date(2025, time.October, 13), "10:00", nil, nil, testStaff, nil)

	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
}

func TestEligibleStaff_BreakExcludesStaff(t *testing.T) {
	day := date(2025, time.October, 13)
	breaks := []domain.BreakWindow{
		{StaffID: 1, Date: day, StartTime: "12:00", EndTime: "13:00"},
	}

	tests := []struct {
		name      string
		startTime string
		wantIDs   []int64
	}{
		{name: "before break", startTime: "11:30", wantIDs: []int64{1, 2}},
		{name: "at break start", startTime: "12:00", wantIDs: []int64{2}},
		{name: "inside break", startTime: "12:30", wantIDs: []int64{2}},
		// Полуоткрытый интервал: конец перерыва уже доступен
		{name: "at break end", startTime: "13:00", wantIDs: []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EligibleStaff(day, domainTime(tt.startTime), nil, nil, testStaff, breaks)
			ids := staffIDs(result)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEligibleStaff_BreakOnOtherDayIgnored(t *testing.T) {
	breaks := []domain.BreakWindow{
		{StaffID: 1, Date: date(2025, time.October, 14), StartTime: "12:00", EndTime: "13:00"},
	}

	result := EligibleStaff(date(2025, time.October, 13), "12:30", nil, nil, testStaff, breaks)
	assert.Equal(t, []int64{1, 2}, staffIDs(result))
}

func TestEligibleStaff_ServiceScopedBreak(t *testing.T) {
	day := date(2025, time.October, 13)
	// Перерыв действует только для услуги 100
	breaks := []domain.BreakWindow{
		{StaffID: 1, Date: day, StartTime: "12:00", EndTime: "13:00", ServiceIDs: []int64{100}},
	}

	// Бронирование услуги 100 - мастер 1 недоступен
	result := EligibleStaff(day, "12:30", []int64{100}, nil, testStaff, breaks)
	assert.Equal(t, []int64{2}, staffIDs(result))

	// Бронирование другой услуги - перерыв не действует
	result = EligibleStaff(day, "12:30", []int64{200}, nil, testStaff, breaks)
	assert.Equal(t, []int64{1, 2}, staffIDs(result))
}

func TestEligibleStaff_ComboScopedBreak(t *testing.T) {
	day := date(2025, time.October, 13)
	breaks := []domain.BreakWindow{
		{StaffID: 2, Date: day, StartTime: "15:00", EndTime: "16:00", ComboOfferIDs: []int64{7}},
	}

	result := EligibleStaff(day, "15:00", nil, []int64{7}, testStaff, breaks)
	assert.Equal(t, []int64{1}, staffIDs(result))

	result = EligibleStaff(day, "15:00", nil, []int64{8}, testStaff, breaks)
	assert.Equal(t, []int64{1, 2}, staffIDs(result))
}

func TestIntersectStaff(t *testing.T) {
	base := []domain.StaffMember{{ID: 1}, {ID: 2}, {ID: 3}}
	other := []domain.StaffMember{{ID: 3}, {ID: 1}}

	result := IntersectStaff(base, other)

	// Порядок базового набора сохраняется
	assert.Equal(t, []int64{1, 3}, staffIDs(result))

	assert.Empty(t, IntersectStaff(base, nil))
	assert.Empty(t, IntersectStaff(nil, other))
}

func staffIDs(staff []domain.StaffMember) []int64 {
	ids := make([]int64, 0, len(staff))
	for _, m := range staff {
		ids = append(ids, m.ID)
	}
	return ids
}
