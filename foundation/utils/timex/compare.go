// File: compare.go
// Title: Comparison Predicates
// Description: Equality, same day/week/month, day granular ordering and
//              range containment.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: IsToday, IsYesterday, IsTomorrow, Min, Max, Clamp
// - 2025-08-14 v0.2.0: Calendar predicates

package timex

import "time"

// Same reports whether a and b are the same instant
func (c *Calendar) Same(a, b any) bool {
	return c.Fix(a).Equal(c.Fix(b))
}

// SameDay reports whether a and b fall on the same calendar day
func (c *Calendar) SameDay(a, b any) bool {
	ta, tb := c.Fix(a), c.Fix(b)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month() && ta.Day() == tb.Day()
}

// SameWeek reports whether a and b fall into the same ISO week
func (c *Calendar) SameWeek(a, b any) bool {
	ya, wa := isoWeek(c.Fix(a))
	yb, wb := isoWeek(c.Fix(b))
	return ya == yb && wa == wb
}

// SameMonth reports whether a and b fall into the same month
func (c *Calendar) SameMonth(a, b any) bool {
	ta, tb := c.Fix(a), c.Fix(b)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}

// IsBefore reports whether the day of a is before the day of b
func (c *Calendar) IsBefore(a, b any) bool {
	return c.midnight(a).Before(c.midnight(b))
}

// IsAfter reports whether the day of a is after the day of b
func (c *Calendar) IsAfter(a, b any) bool {
	return c.midnight(a).After(c.midnight(b))
}

// Within reports whether the day of d lies between the days of a and b.
// Boundary days count only when inclusive is set.
func (c *Calendar) Within(d, a, b any, inclusive bool) bool {
	td, ta, tb := c.Fix(d), c.Fix(a), c.Fix(b)
	if c.SameDay(td, ta) || c.SameDay(td, tb) {
		return inclusive
	}
	return !c.IsBefore(td, ta) && !c.IsAfter(td, tb)
}

func (c *Calendar) midnight(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}
