package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "09:30", want: "09:30"},
		{input: "9:30", want: "09:30"}, // нормализация к zero-padded
		{input: "00:00", want: "00:00"},
		{input: "23:59", want: "23:59"},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("20:00").IsAfter("09:30"))
	// Zero-padding делает лексикографическое сравнение корректным
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start   TimeString
		minutes int
		want    TimeString
	}{
		{start: "10:00", minutes: 30, want: "10:30"},
		{start: "10:45", minutes: 30, want: "11:15"},
		{start: "23:45", minutes: 30, want: "00:15"},
		{start: "10:00", minutes: -30, want: "09:30"},
		{start: "00:15", minutes: -30, want: "23:45"},
	}

	for _, tt := range tests {
		got, err := tt.start.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_DiffMinutes(t *testing.T) {
	diff, err := TimeString("11:15").DiffMinutes("10:00")
	require.NoError(t, err)
	assert.Equal(t, 75, diff)

	diff, err = TimeString("10:00").DiffMinutes("11:00")
	require.NoError(t, err)
	assert.Equal(t, -60, diff)

	_, err = TimeString("").DiffMinutes("10:00")
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00")) // TIME колонка с секундами
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 13, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("junk").Value()
	assert.Error(t, err)
}
