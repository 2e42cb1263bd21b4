package schedule

import (
	"fmt"
	"time"
)

// Pattern is a recurrence step for a recurring booking.
type Pattern string

const (
	PatternDaily   Pattern = "Daily"
	PatternWeekly  Pattern = "Weekly"
	PatternMonthly Pattern = "Monthly"
)

// Valid reports whether p is one of the recognized recurrence patterns.
func (p Pattern) Valid() bool {
	switch p {
	case PatternDaily, PatternWeekly, PatternMonthly:
		return true
	}
	return false
}

// Advance moves a calendar date forward by one recurrence step. Monthly uses
// time.AddDate's native overflow semantics: Jan 31 + 1 month lands on Mar 2
// or Mar 3 depending on the year, it does not clamp to Feb 28. An unknown
// pattern is an error, never a silent no-op; a no-op advance would spin
// Expand forever.
func Advance(date time.Time, pattern Pattern) (time.Time, error) {
	switch pattern {
	case PatternDaily:
		return date.AddDate(0, 0, 1), nil
	case PatternWeekly:
		return date.AddDate(0, 0, 7), nil
	case PatternMonthly:
		return date.AddDate(0, 1, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedPattern, string(pattern))
}

// Expand produces every occurrence date of a recurring booking from start
// through end inclusive, ascending. An empty pattern means no recurrence and
// yields just the start date. The pattern is checked before the loop so a bad
// value fails fast instead of truncating the series.
func Expand(start time.Time, pattern Pattern, end time.Time) ([]time.Time, error) {
	if pattern == "" {
		return []time.Time{start}, nil
	}
	if !pattern.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPattern, string(pattern))
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: recurrence end %s before start %s",
			ErrInvalidRange, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	var dates []time.Time
	for cursor := start; !cursor.After(end); {
		dates = append(dates, cursor)

		next, err := Advance(cursor, pattern)
		if err != nil {
			return nil, err
		}
		cursor = next
	}

	return dates, nil
}
