// Package schedule holds the pure booking-time computations: recurrence
// expansion, free-interval calculation, and conflict checks. Everything here
// works on already-fetched in-memory data; nothing reads the clock or does I/O.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTimeFormat is returned when a wall-clock string does not
	// parse as HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidRange is returned when a time range or window has
	// end <= start.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrUnsupportedPattern is returned for a recurrence pattern outside
	// Daily/Weekly/Monthly.
	ErrUnsupportedPattern = errors.New("unsupported recurrence pattern")
)

// MinutesPerDay is the upper bound for a minutes-since-midnight value.
const MinutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" wall-clock string into minutes since
// midnight. Display-format strings are normalized here, at the boundary, so
// the sweep and conflict code never see unparsed input.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Interval is a contiguous time range in minutes since midnight,
// half-open: [Start, End).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Window is the bookable portion of a day, typically the configured
// business hours.
type Window struct {
	Start int
	End   int
}

// NewWindow builds a Window from two wall-clock strings.
func NewWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	if e <= s {
		return Window{}, fmt.Errorf("%w: window %s-%s", ErrInvalidRange, start, end)
	}
	return Window{Start: s, End: e}, nil
}
