// Package timex implements calendar arithmetic and relative time formatting.
//
// Package: timex
// Title: Calendar Arithmetic and Relative Time
// Description: Coerces timestamps, epoch milliseconds and date strings into
//              instants, shifts them by calendar units, answers weekday and
//              period queries and describes instants in human language
//              relative to now.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-08-14 v0.2.0: Calendar type, weekday masks, relative formatting
//
// # Calendar
//
// All operations are methods on *Calendar. A Calendar is built once from a
// Config and never changes afterwards:
//
//	cal, err := timex.New(timex.Config{
//		FirstWeekday: timex.Monday,
//		TimeFormat:   timex.TwentyFourHour,
//		Location:     time.UTC,
//	})
//
// Package-level functions such as timex.Fix and timex.Relative use the
// default calendar (Monday first, English labels, host local time).
//
// # Instants
//
// Every operation accepts any value Fix understands: time.Time, *time.Time,
// Optional, integer and float epoch milliseconds, json.Number, values with a
// UnixMilli() int64 method and strings. Strings holding an integer are epoch
// milliseconds; otherwise RFC 3339, "2006-01-02 15:04:05", "2006-01-02",
// "01/02/2006", "2.1.2006" and a few related layouts are tried, and finally
// a leading integer is taken as epoch milliseconds.
//
// Fix never fails. Malformed input is logged at warn level with the
// INVALID_INSTANT code and replaced by the current instant. Parse returns
// the error instead.
//
// # Weekday Masks
//
// WeekdayMask has one bit per day, Sunday=1 through Saturday=64, with the
// groups AllDays, Workdays and Weekends:
//
//	days, ok := cal.DotwArrFor(date, timex.Monday|timex.Friday)
//	nth := cal.NthDayArr(date, 2) // second occurrence of every weekday
//	third, ok := nth.Get(timex.Tuesday)
//
// # Relative Time
//
//	cal.Relative(time.Now().Add(-90 * time.Second)) // "1 minute ago"
//	cal.Relative(time.Now().Add(48 * time.Hour))    // "in 2 days"
//	cal.RelativeFormat(timex.None())                // "now"
//
// Labels come from a LocaleTable. EnglishLocale is built in; German and
// French tables are embedded as catalogs and loaded with BuiltinLocale or
// LoadConfig.
package timex
