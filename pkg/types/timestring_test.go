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
		{"valid midday", "12:30", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"missing leading zero", "9:30", true},
		{"hour out of range", "24:00", true},
		{"minute out of range", "12:60", true},
		{"garbage", "ab:cd", true},
		{"empty", "", true},
		{"with seconds", "12:30:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		ts, err := FromMinutes(m)
		require.NoError(t, err)
		assert.Equal(t, m, ts.Minutes())
	}
}

func TestFromMinutesOutOfRange(t *testing.T) {
	_, err := FromMinutes(-1)
	assert.Error(t, err)

	_, err = FromMinutes(1440)
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("12:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "13:30", shifted.String())

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err, "crossing midnight must not wrap")
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 5, 33, 0, time.UTC)
	assert.Equal(t, "09:05", NewTimeString(now).String())
}
