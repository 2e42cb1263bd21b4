package schedule

import (
	"fmt"
	"sort"
)

// FreeIntervals computes the bookable sub-intervals of a business-hours
// window given the occupied ranges of a room on one date. Each occupied range
// is padded by bufferMinutes on both sides and clamped to the window, then a
// single left-to-right sweep emits the gaps.
//
// The caller is responsible for passing only ranges that actually block
// availability (confirmed bookings); pending, declined, and cancelled
// bookings must be filtered out before this call. The returned intervals are
// disjoint and ascending, and together with the buffered occupied ranges
// cover the window exactly.
func FreeIntervals(window Window, busy []Interval, bufferMinutes int) ([]Interval, error) {
	if window.End <= window.Start {
		return nil, fmt.Errorf("%w: window %s-%s", ErrInvalidRange,
			FormatClock(window.Start), FormatClock(window.End))
	}
	if bufferMinutes < 0 {
		return nil, fmt.Errorf("%w: negative buffer %d", ErrInvalidRange, bufferMinutes)
	}

	occupied := make([]Interval, 0, len(busy))
	for _, b := range busy {
		if b.End <= b.Start {
			return nil, fmt.Errorf("%w: busy range %s-%s", ErrInvalidRange,
				FormatClock(b.Start), FormatClock(b.End))
		}

		// Clamping keeps the buffer from pushing a range outside the window.
		start := b.Start - bufferMinutes
		if start < window.Start {
			start = window.Start
		}
		end := b.End + bufferMinutes
		if end > window.End {
			end = window.End
		}
		if end > start {
			occupied = append(occupied, Interval{Start: start, End: end})
		}
	}

	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Start < occupied[j].Start
	})

	var free []Interval
	cursor := window.Start
	for _, occ := range occupied {
		if occ.Start > cursor {
			free = append(free, Interval{Start: cursor, End: occ.Start})
		}
		if occ.End > cursor {
			cursor = occ.End
		}
	}
	if cursor < window.End {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free, nil
}

// ClipBefore drops or truncates intervals that start before cutoff. The
// availability handler applies this when the queried date is today, so
// already-elapsed slots are never offered; the sweep itself stays pure with
// respect to the current time.
func ClipBefore(intervals []Interval, cutoff int) []Interval {
	var out []Interval
	for _, iv := range intervals {
		if iv.End <= cutoff {
			continue
		}
		if iv.Start < cutoff {
			iv.Start = cutoff
		}
		out = append(out, iv)
	}
	return out
}
