package booking

import "time"

// overlaps reports whether two half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries are not a conflict: a
// stay ending at T and another starting at T share the room cleanly.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
