// File: arithmetic.go
// Title: Calendar Arithmetic and Field Access
// Description: Shifts instants by seconds through years, rounds to five
//              minutes and reads single fields with optional leading zeros
//              and 12-hour clock hours.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Rounding and truncation helpers
// - 2025-08-14 v0.2.0: Unit based add/sub, field getters

package timex

import (
	"math"
	"strconv"
	"time"
)

// Now returns the current instant of the calendar clock
func (c *Calendar) Now() time.Time {
	return c.in(c.clock.Now())
}

// Round rounds the minutes of v to the nearest multiple of five and clears
// seconds. Minute 60 rolls into the next hour.
func (c *Calendar) Round(v any) time.Time {
	t := c.Fix(v)
	minute := int(jsRound(float64(t.Minute())/5)) * 5
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, c.loc)
}

// ===============================
// Add / Sub
// ===============================

// AddSeconds shifts v by n seconds
func (c *Calendar) AddSeconds(v any, n int) time.Time {
	return c.shiftSeconds(v, int64(n))
}

// AddMinutes shifts v by n minutes
func (c *Calendar) AddMinutes(v any, n int) time.Time {
	return c.shiftSeconds(v, int64(n)*60)
}

// AddHours shifts v by n hours
func (c *Calendar) AddHours(v any, n int) time.Time {
	return c.shiftSeconds(v, int64(n)*3600)
}

// AddDays shifts v by n times 24 hours
func (c *Calendar) AddDays(v any, n int) time.Time {
	return c.shiftSeconds(v, int64(n)*secondsPerDay)
}

// shiftSeconds works on Unix seconds; time.Duration only spans about 292
// years.
func (c *Calendar) shiftSeconds(v any, n int64) time.Time {
	t := c.Fix(v)
	return time.Unix(t.Unix()+n, int64(t.Nanosecond())).In(c.loc)
}

// AddMonths adds n to the month field. Days past the end of the target
// month overflow into the following month (Jan 31 + 1 month = Mar 2 or 3).
func (c *Calendar) AddMonths(v any, n int) time.Time {
	return c.Fix(v).AddDate(0, n, 0)
}

// AddYears adds n to the year field with the same overflow as AddMonths
func (c *Calendar) AddYears(v any, n int) time.Time {
	return c.Fix(v).AddDate(n, 0, 0)
}

// SubSeconds shifts v back by n seconds
func (c *Calendar) SubSeconds(v any, n int) time.Time {
	return c.AddSeconds(v, -n)
}

// SubMinutes shifts v back by n minutes
func (c *Calendar) SubMinutes(v any, n int) time.Time {
	return c.AddMinutes(v, -n)
}

// SubHours shifts v back by n hours
func (c *Calendar) SubHours(v any, n int) time.Time {
	return c.AddHours(v, -n)
}

// SubDays shifts v back by n times 24 hours
func (c *Calendar) SubDays(v any, n int) time.Time {
	return c.AddDays(v, -n)
}

// SubMonths subtracts n from the month field
func (c *Calendar) SubMonths(v any, n int) time.Time {
	return c.AddMonths(v, -n)
}

// SubYears subtracts n from the year field
func (c *Calendar) SubYears(v any, n int) time.Time {
	return c.AddYears(v, -n)
}

// Unit names a calendar unit for Shift
type Unit string

const (
	UnitSecond Unit = "second"
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
	UnitWeek   Unit = "week"
	UnitMonth  Unit = "month"
	UnitYear   Unit = "year"
)

// Shift adds n units to v; a negative n subtracts. Weeks are seven days.
// The second result is false for an unknown unit.
func (c *Calendar) Shift(v any, n int, unit Unit) (time.Time, bool) {
	switch unit {
	case UnitSecond:
		return c.AddSeconds(v, n), true
	case UnitMinute:
		return c.AddMinutes(v, n), true
	case UnitHour:
		return c.AddHours(v, n), true
	case UnitDay:
		return c.AddDays(v, n), true
	case UnitWeek:
		return c.AddDays(v, n*7), true
	case UnitMonth:
		return c.AddMonths(v, n), true
	case UnitYear:
		return c.AddYears(v, n), true
	}
	return time.Time{}, false
}

// ===============================
// Field Getters
// ===============================

// Hour returns the hour of v; with twelveHour 0 becomes 12 and 13-23
// become 1-11
func (c *Calendar) Hour(v any, twelveHour bool) int {
	h := c.Fix(v).Hour()
	if twelveHour {
		return hour12(h)
	}
	return h
}

// Minute returns the minute of v
func (c *Calendar) Minute(v any) int {
	return c.Fix(v).Minute()
}

// Second returns the second of v
func (c *Calendar) Second(v any) int {
	return c.Fix(v).Second()
}

// Day returns the day of month of v
func (c *Calendar) Day(v any) int {
	return c.Fix(v).Day()
}

// Month returns the month of v, 1-12
func (c *Calendar) Month(v any) int {
	return int(c.Fix(v).Month())
}

// Year returns the year of v
func (c *Calendar) Year(v any) int {
	return c.Fix(v).Year()
}

// Pad renders n, with a leading zero for values below ten when leadingZero
// is set
func Pad(n int, leadingZero bool) string {
	if leadingZero && n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func hour12(h int) int {
	switch {
	case h == 0:
		return 12
	case h >= 13:
		return h - 12
	default:
		return h
	}
}

// jsRound rounds half up, so -1.5 becomes -1
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
