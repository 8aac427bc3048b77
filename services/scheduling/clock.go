// Package scheduling holds the appointment scheduling and conflict-resolution
// engine. Everything in this package is pure computation over caller-supplied
// data: no I/O, no clocks other than the anchor passed in, no shared state.
// It is used both by the HTTP handlers and by anything pre-validating a
// booking before submission, so both sides agree on the same arithmetic.
package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// AddMinutes adds n minutes (n >= 0) to a canonical "HH:MM" time and returns
// the result in canonical form. Wrap-around past midnight is undefined for
// clinic hours and must be rejected upstream.
func AddMinutes(t string, n int) string {
	return minutesToClock(clockToMinutes(t) + n)
}

// Compare returns -1, 0 or 1. Zero-padded "HH:MM" strings order lexically, so
// plain string comparison is correct.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// IntervalsOverlap reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching intervals (endA == startB) do not
// overlap, so back-to-back appointments are legal.
func IntervalsOverlap(startA, endA, startB, endB string) bool {
	return startA < endB && startB < endA
}

// WeekdayName returns the weekday ("Sunday".."Saturday") of an ISO
// "YYYY-MM-DD" date.
func WeekdayName(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Weekday().String(), nil
}

func clockToMinutes(t string) int {
	var h, m int
	fmt.Sscanf(t, "%d:%d", &h, &m)
	return h*60 + m
}

func minutesToClock(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func maxTime(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minTime(a, b string) string {
	if a < b {
		return a
	}
	return b
}
