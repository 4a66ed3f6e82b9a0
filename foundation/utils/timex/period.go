// File: period.go
// Title: Month and Week Periods
// Description: Month and week boundaries, weekday enumeration within a
//              month, n-th weekday lookup and the configured week start.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Start/end of day, week, month and year
// - 2025-08-14 v0.2.0: Weekday enumeration, n-th weekday, week start search

package timex

import (
	"sort"
	"time"
)

// NthDays maps a single-day mask to the date of its n-th occurrence in a
// month. Weekdays with fewer than n occurrences are absent.
type NthDays map[WeekdayMask]time.Time

// Get returns the date recorded for day
func (n NthDays) Get(day WeekdayMask) (time.Time, bool) {
	t, ok := n[day]
	return t, ok
}

// Sorted returns the recorded dates in ascending order
func (n NthDays) Sorted() []time.Time {
	dates := make([]time.Time, 0, len(n))
	for _, t := range n {
		dates = append(dates, t)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// DotwArrFor returns every date in the month of v whose weekday is in mask,
// ascending, at 00:00:00. It returns false when mask names no weekday.
func (c *Calendar) DotwArrFor(v any, mask WeekdayMask) ([]time.Time, bool) {
	if mask&AllDays == 0 {
		return nil, false
	}

	start := c.StartOfMonth(v)
	var days []time.Time
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		if mask.Intersects(MaskForWeekday(d.Weekday())) {
			days = append(days, d)
		}
	}
	return days, len(days) > 0
}

// NthDayArr returns, per weekday, the date of its n-th occurrence in the
// month of v. The scan stops once all seven weekdays reached n.
func (c *Calendar) NthDayArr(v any, n int) NthDays {
	result := make(NthDays, 7)
	if n < 1 {
		return result
	}

	start := c.StartOfMonth(v)
	counts := make(map[WeekdayMask]int, 7)
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		day := MaskForWeekday(d.Weekday())
		if counts[day] < n {
			counts[day]++
			if counts[day] == n {
				result[day] = d
			}
		}
		if len(result) == 7 {
			break
		}
	}
	return result
}

// WeekStart returns the day matching the first weekday within the week of
// v. Both directions are scanned; the nearer match wins unless it falls into
// another ISO week, in which case the other direction is taken.
func (c *Calendar) WeekStart(v any) time.Time {
	d := c.Fix(v)
	if c.firstWeekday.Intersects(MaskForWeekday(d.Weekday())) {
		return d
	}

	back, backDistance := d, 0
	for !c.firstWeekday.Intersects(MaskForWeekday(back.Weekday())) {
		back = back.AddDate(0, 0, -1)
		backDistance++
	}

	forward, forwardDistance := d, 0
	for !c.firstWeekday.Intersects(MaskForWeekday(forward.Weekday())) {
		forward = forward.AddDate(0, 0, 1)
		forwardDistance++
	}

	start := forward
	if backDistance < forwardDistance {
		start = back
	}
	if !c.SameWeek(start, d) {
		if backDistance > forwardDistance {
			start = back
		} else {
			start = forward
		}
	}
	return start
}

// ===============================
// Month Boundaries
// ===============================

// StartForYearAndMonth returns the first of month at 00:00:00
func (c *Calendar) StartForYearAndMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
}

// EndForYearAndMonth returns the last day of month at 23:59:59
func (c *Calendar) EndForYearAndMonth(year int, month time.Month) time.Time {
	return c.EndOfMonth(c.StartForYearAndMonth(year, month))
}

// StartOfMonth returns the first of the month of v at 00:00:00
func (c *Calendar) StartOfMonth(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.loc)
}

// EndOfMonth returns the last day of the month of v at 23:59:59
func (c *Calendar) EndOfMonth(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month()+1, 0, 23, 59, 59, 0, c.loc)
}

// LastDotm returns the number of days in the month of v
func (c *Calendar) LastDotm(v any) int {
	return c.EndOfMonth(v).Day()
}

// ===============================
// Week Boundaries
// ===============================

// StartForYearAndWeek returns January 1st of year plus (week-1)*7 days.
// Week 1 always starts on January 1st; this is not the ISO week.
func (c *Calendar) StartForYearAndWeek(year, week int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, c.loc).AddDate(0, 0, (week-1)*7)
}

// EndForYearAndWeek returns the sixth day after StartForYearAndWeek at
// 23:59:59
func (c *Calendar) EndForYearAndWeek(year, week int) time.Time {
	end := c.StartForYearAndWeek(year, week).AddDate(0, 0, 6)
	return time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, c.loc)
}
