// File: between.go
// Title: Distances Between Instants
// Description: Day, week, month and year distances. All of them are
//              symmetric in their arguments and never negative.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Age, YearsBetween, MonthsBetween, DaysBetween
// - 2025-08-14 v0.2.0: Noon anchored day distance, clamped month walk

package timex

import "time"

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerWeek = 7 * secondsPerDay
)

// DaysBetween returns the number of calendar days between a and b. Both
// are moved to noon first, so daylight saving shifts do not count.
func (c *Calendar) DaysBetween(a, b any) int {
	secs := secondsBetween(c.Normalize(a), c.Normalize(b))
	return int(jsRound(float64(secs) / secondsPerDay))
}

// WeeksBetween returns the number of whole seven-day spans between a and b
func (c *Calendar) WeeksBetween(a, b any) int {
	return int(secondsBetween(c.Fix(a), c.Fix(b)) / secondsPerWeek)
}

// secondsBetween returns the whole seconds between a and b, rounded down.
// It avoids Time.Sub, which saturates for spans beyond about 292 years.
func secondsBetween(a, b time.Time) int64 {
	if a.Before(b) {
		a, b = b, a
	}
	secs := a.Unix() - b.Unix()
	if a.Nanosecond() < b.Nanosecond() {
		secs--
	}
	return secs
}

// MonthsBetween walks month by month from the earlier to the later instant
// until month and year match and returns the number of steps. A start day
// after the 27th is clamped to the 26th so the walk never skips a month.
func (c *Calendar) MonthsBetween(a, b any) int {
	start, end := c.Fix(a), c.Fix(b)
	if start.After(end) {
		start, end = end, start
	}

	if start.Day() > 27 {
		start = time.Date(start.Year(), start.Month(), 26,
			start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), c.loc)
	}

	count := 0
	for start.Month() != end.Month() || start.Year() != end.Year() {
		count++
		start = start.AddDate(0, 1, 0)
	}
	return count
}

// YearsBetween returns the difference of the calendar years of a and b
func (c *Calendar) YearsBetween(a, b any) int {
	diff := c.Fix(a).Year() - c.Fix(b).Year()
	if diff < 0 {
		return -diff
	}
	return diff
}
