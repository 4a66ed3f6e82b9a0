// File: relative.go
// Title: Time Strings and Relative Formatting
// Description: Renders the time of day in 12-hour or 24-hour form and
//              describes an instant relative to now ("2 hours ago",
//              "in 3 days", "yesterday at 3:05 PM") using the locale table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Duration formatting
// - 2025-08-14 v0.2.0: Relative formatting with locale tables

package timex

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Average Gregorian month and year lengths in days
const (
	avgDaysPerMonth = 30.4368
	avgDaysPerYear  = 365.242
)

// Optional is an instant that may be absent
type Optional struct {
	Time  time.Time
	Valid bool
}

// Some wraps t as a present instant
func Some(t time.Time) Optional {
	return Optional{Time: t, Valid: true}
}

// None returns an absent instant
func None() Optional {
	return Optional{}
}

// Get returns the instant and whether it is present
func (o Optional) Get() (time.Time, bool) {
	return o.Time, o.Valid
}

// String returns the instant in RFC 3339 or "none"
func (o Optional) String() string {
	if !o.Valid {
		return "none"
	}
	return o.Time.Format(time.RFC3339)
}

// TimeString renders the time of day of v, "3:05 PM" or "15:05". Minutes
// are always two digits; hours only with leadingZeroHours.
func (c *Calendar) TimeString(v any, leadingZeroHours bool) string {
	return c.timeString(c.Fix(v), leadingZeroHours)
}

func (c *Calendar) timeString(t time.Time, leadingZeroHours bool) string {
	minute := Pad(t.Minute(), true)
	if c.timeFormat == TwelveHour {
		suffix := c.locale.TimeAM
		if t.Hour() > 11 {
			suffix = c.locale.TimePM
		}
		return joinTokens(Pad(hour12(t.Hour()), leadingZeroHours)+":"+minute, suffix)
	}
	return Pad(t.Hour(), leadingZeroHours) + ":" + minute
}

// RelativeFormat describes o relative to the calendar clock. An absent
// instant yields the present label.
func (c *Calendar) RelativeFormat(o Optional) string {
	if !o.Valid {
		return c.locale.Present
	}
	return c.relative(c.Fix(o.Time), c.Now())
}

// Relative coerces v and describes it relative to the calendar clock. nil
// and absent Optionals yield the present label.
func (c *Calendar) Relative(v any) string {
	switch x := v.(type) {
	case nil:
		return c.locale.Present
	case Optional:
		return c.RelativeFormat(x)
	}
	return c.relative(c.Fix(v), c.Now())
}

// RelativeTo describes v relative to now instead of the calendar clock
func (c *Calendar) RelativeTo(v, now any) string {
	return c.relative(c.Fix(v), c.Fix(now))
}

func (c *Calendar) relative(d, now time.Time) string {
	if c.SameDay(d, now) {
		return c.relativeSameDay(d, now)
	}

	days := c.DaysBetween(d, now)
	future := c.IsAfter(d, now)

	if days <= 1 {
		word := c.locale.Yesterday
		if future {
			word = c.locale.Tomorrow
		}
		return joinTokens(word, c.locale.TimePrefix, c.timeString(d, true))
	}

	n := int64(days)
	unit := c.locale.Day
	switch {
	case days >= 7 && days < 30:
		n = int64(jsRound(float64(days) / 7))
		unit = c.locale.Week
	case days >= 30 && days < 365:
		n = int64(jsRound(float64(days) / avgDaysPerMonth))
		unit = c.locale.Month
	case days >= 365:
		n = int64(jsRound(float64(days) / avgDaysPerYear))
		unit = c.locale.Year
	}
	return c.phrase(!future, n, unit.For(n))
}

func (c *Calendar) relativeSameDay(d, now time.Time) string {
	diff := jsRound(float64(d.UnixMilli()-now.UnixMilli()) / 1000)
	past := diff < 0
	abs := math.Abs(diff)

	switch {
	case abs < 5:
		if past {
			return c.locale.PastShort
		}
		return c.locale.FutureShort
	case abs < 60:
		return c.phrase(past, int64(abs), c.locale.Second.Other)
	case abs < 3600:
		n := int64(math.Abs(jsRound(diff / 60)))
		return c.phrase(past, n, c.locale.Minute.For(n))
	default:
		n := int64(math.Abs(jsRound(diff / 3600)))
		return c.phrase(past, n, c.locale.Hour.For(n))
	}
}

func (c *Calendar) phrase(past bool, n int64, unit string) string {
	if past {
		return joinTokens(c.locale.PastPrefix, strconv.FormatInt(n, 10), unit, c.locale.PastSuffix)
	}
	return joinTokens(c.locale.FuturePrefix, strconv.FormatInt(n, 10), unit, c.locale.FutureSuffix)
}

// joinTokens joins the non-blank tokens with single spaces
func joinTokens(tokens ...string) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, " ")
}
