package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:30", 570},
		{"22:00", 1320},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "8", "25:00", "12:60", "ab:cd", "12:00:00", "-1:30", "12:-5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", FormatClock(480))
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:05", FormatClock(5))
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow("08:00", "22:00")
	require.NoError(t, err)
	assert.Equal(t, Window{Start: 480, End: 1320}, w)
}

func TestNewWindow_Inverted(t *testing.T) {
	_, err := NewWindow("22:00", "08:00")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewWindow_Malformed(t *testing.T) {
	_, err := NewWindow("8am", "22:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
