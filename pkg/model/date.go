package model

import "time"

// DateLayout is the wire format for check-in/check-out dates. Dates carry no
// timezone component; for this layout lexicographic string comparison is
// equivalent to chronological comparison, which the overlap predicate and
// the mongo range filters both rely on.
const DateLayout = "2006-01-02"

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
