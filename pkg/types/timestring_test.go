package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid time", input: "10:00"},
		{name: "midnight", input: "00:00"},
		{name: "end of day", input: "23:59"},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 1, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("11:00").IsAfter(TimeString("10:30")))
	assert.True(t, TimeString("10:00").Equal(TimeString("10:00")))
	assert.False(t, TimeString("10:00").Equal(TimeString("10:01")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)

	// Выход за пределы суток не допускается
	_, err = TimeString("23:30").AddMinutes(60)
	require.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30:00")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.Error(t, ts.Scan(42))
}
