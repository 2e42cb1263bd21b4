package schedule

// Overlaps reports whether two half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasConflict reports whether a candidate range overlaps any existing busy
// range. The caller passes the confirmed bookings for the candidate's room
// and date. No buffer is applied here: the buffer exists only to keep the
// time picker from offering back-to-back slots, while this check is the
// authoritative gate and uses the raw booked ranges.
func HasConflict(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(candidate.Start, candidate.End, b.Start, b.End) {
			return true
		}
	}
	return false
}
