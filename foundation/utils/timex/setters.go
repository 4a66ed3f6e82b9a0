// File: setters.go
// Title: Field Setters
// Description: Builds new instants with the date or time of day replaced.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfDay and EndOfDay
// - 2025-08-14 v0.2.0: SetSameDay, end of day keeps sub-second fields

package timex

import "time"

// SetSameDay returns the date of b with the time of day of a, sub-seconds
// cleared
func (c *Calendar) SetSameDay(a, b any) time.Time {
	ta, tb := c.Fix(a), c.Fix(b)
	return time.Date(tb.Year(), tb.Month(), tb.Day(), ta.Hour(), ta.Minute(), ta.Second(), 0, c.loc)
}

// SetStartOfDay returns v at 00:00:00.000
func (c *Calendar) SetStartOfDay(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// SetEndOfDay returns v at 23:59:59. Sub-second fields are kept.
func (c *Calendar) SetEndOfDay(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, t.Nanosecond(), c.loc)
}
