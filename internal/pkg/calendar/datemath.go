package calendar

import "time"

const day = 24 * time.Hour

// DayCount returns the inclusive number of days between start and end.
// The caller guarantees start is not after end.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start)/day) + 1
}

// DaysBetween returns the whole-day difference end - start, negative when
// end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)) / day)
}

// RangeOverlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func RangeOverlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Intersect clips [start, end] to [from, to]. ok is false when the two
// ranges are disjoint.
func Intersect(start, end, from, to time.Time) (time.Time, time.Time, bool) {
	if !RangeOverlaps(start, end, from, to) {
		return time.Time{}, time.Time{}, false
	}
	return Later(start, from), Earlier(end, to), true
}

func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func Earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
