// File: default.go
// Title: Package-Level Calendar Functions
// Description: Convenience functions that delegate to the default calendar.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package timex

import "time"

// Fix coerces v with the default calendar
func Fix(v any) time.Time { return Default().Fix(v) }

// Parse coerces v with the default calendar and reports malformed input
func Parse(v any) (time.Time, error) { return Default().Parse(v) }

// Normalize moves v to noon using the default calendar
func Normalize(v any) time.Time { return Default().Normalize(v) }

// NormalizeMonth moves v to noon of the first of its month
func NormalizeMonth(v any) time.Time { return Default().NormalizeMonth(v) }

// Now returns the current instant of the default calendar
func Now() time.Time { return Default().Now() }

// Round rounds v to five minutes
func Round(v any) time.Time { return Default().Round(v) }

func AddSeconds(v any, n int) time.Time { return Default().AddSeconds(v, n) }
func AddMinutes(v any, n int) time.Time { return Default().AddMinutes(v, n) }
func AddHours(v any, n int) time.Time   { return Default().AddHours(v, n) }
func AddDays(v any, n int) time.Time    { return Default().AddDays(v, n) }
func AddMonths(v any, n int) time.Time  { return Default().AddMonths(v, n) }
func AddYears(v any, n int) time.Time   { return Default().AddYears(v, n) }
func SubSeconds(v any, n int) time.Time { return Default().SubSeconds(v, n) }
func SubMinutes(v any, n int) time.Time { return Default().SubMinutes(v, n) }
func SubHours(v any, n int) time.Time   { return Default().SubHours(v, n) }
func SubDays(v any, n int) time.Time    { return Default().SubDays(v, n) }
func SubMonths(v any, n int) time.Time  { return Default().SubMonths(v, n) }
func SubYears(v any, n int) time.Time   { return Default().SubYears(v, n) }

// Dotw returns the weekday mask of v
func Dotw(v any) WeekdayMask { return Default().Dotw(v) }

// DotwInt returns the Monday-first weekday ordinal of v
func DotwInt(v any) int { return Default().DotwInt(v) }

// DotwForInt maps a zero-based Monday-first ordinal to its mask
func DotwForInt(ordinal int) WeekdayMask { return Default().DotwForInt(ordinal) }

// ISOWeek returns the ISO-8601 week of v
func ISOWeek(v any) int { return Default().ISOWeek(v) }

// DotwArrFor lists the days of the month of v matching mask
func DotwArrFor(v any, mask WeekdayMask) ([]time.Time, bool) {
	return Default().DotwArrFor(v, mask)
}

// NthDayArr returns the n-th occurrence of every weekday in the month of v
func NthDayArr(v any, n int) NthDays { return Default().NthDayArr(v, n) }

// WeekStart returns the start of the week of v
func WeekStart(v any) time.Time { return Default().WeekStart(v) }

func StartOfMonth(v any) time.Time { return Default().StartOfMonth(v) }
func EndOfMonth(v any) time.Time   { return Default().EndOfMonth(v) }
func LastDotm(v any) int           { return Default().LastDotm(v) }

func DaysBetween(a, b any) int   { return Default().DaysBetween(a, b) }
func WeeksBetween(a, b any) int  { return Default().WeeksBetween(a, b) }
func MonthsBetween(a, b any) int { return Default().MonthsBetween(a, b) }
func YearsBetween(a, b any) int  { return Default().YearsBetween(a, b) }

func Same(a, b any) bool      { return Default().Same(a, b) }
func SameDay(a, b any) bool   { return Default().SameDay(a, b) }
func SameWeek(a, b any) bool  { return Default().SameWeek(a, b) }
func SameMonth(a, b any) bool { return Default().SameMonth(a, b) }
func IsBefore(a, b any) bool  { return Default().IsBefore(a, b) }
func IsAfter(a, b any) bool   { return Default().IsAfter(a, b) }

// Within reports whether the day of d lies between the days of a and b
func Within(d, a, b any, inclusive bool) bool { return Default().Within(d, a, b, inclusive) }

// TimeString renders the time of day of v
func TimeString(v any, leadingZeroHours bool) string {
	return Default().TimeString(v, leadingZeroHours)
}

// RelativeFormat describes o relative to now
func RelativeFormat(o Optional) string { return Default().RelativeFormat(o) }

// Relative describes v relative to now
func Relative(v any) string { return Default().Relative(v) }

func SetSameDay(a, b any) time.Time  { return Default().SetSameDay(a, b) }
func SetStartOfDay(v any) time.Time { return Default().SetStartOfDay(v) }
func SetEndOfDay(v any) time.Time   { return Default().SetEndOfDay(v) }
