// File: coerce.go
// Title: Instant Coercion and Normalization
// Description: Turns times, epoch-millisecond numbers, values with a
//              UnixMilli accessor and strings into instants in the calendar
//              location. Fix recovers from malformed input by falling back
//              to the current instant and logging the input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with multi-format parsing
// - 2025-08-14 v0.2.0: Coercion of arbitrary values, recovering Fix

package timex

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	mdwlog "github.com/msto63/mdwcal/foundation/core/log"
)

// Common time formats
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Business formats
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	// Display formats
	DisplayDate     = "Monday, January 2, 2006"
	DisplayDateTime = "Monday, January 2, 2006 15:04:05"
	DisplayMonth    = "January 2006"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"
	SlashDate     = "2006/01/02"
	SlashDateTime = "2006/01/02 15:04:05"
	EuropeanDate  = "2.1.2006"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// maxEpochMillis bounds representable instants to +-100,000,000 days
// around the epoch.
const maxEpochMillis = 8.64e15

// parseLayouts are tried in order for string input. Layouts without a zone
// are read in the calendar location.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	ISO8601DateTime,
	BusinessDateTime,
	LogTimestamp,
	ISO8601Date,
	SlashDateTime,
	SlashDate,
	ShortDateTime,
	ShortDate,
	EuropeanDate,
}

// epochMillis is implemented by values exposing an epoch-milliseconds accessor
type epochMillis interface {
	UnixMilli() int64
}

// Fix coerces v into an instant in the calendar location. Malformed input
// is logged and replaced by the current instant.
func (c *Calendar) Fix(v any) time.Time {
	t, err := c.Parse(v)
	if err != nil {
		fallback := c.Now()
		c.log().LogError(err, mdwlog.Time("fallback", fallback))
		return fallback
	}
	return t
}

// Parse coerces v into an instant in the calendar location and reports
// malformed input as an INVALID_INSTANT error. A string of digits is always
// epoch milliseconds, so "20240615" is 1970-01-01T05:37:20.615Z; dates need
// separators ("2024-06-15").
func (c *Calendar) Parse(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, malformed(v, "no value")
	case time.Time:
		return c.in(x), nil
	case *time.Time:
		if x == nil {
			return time.Time{}, malformed(v, "nil time")
		}
		return c.in(*x), nil
	case Optional:
		if !x.Valid {
			return time.Time{}, malformed(v, "no value")
		}
		return c.in(x.Time), nil
	case string:
		return c.parseString(x)
	case []byte:
		return c.parseString(string(x))
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return c.fromMillis(v, n)
		}
		if f, err := x.Float64(); err == nil {
			return c.fromFloat(v, f)
		}
		return c.parseString(x.String())
	case int:
		return c.fromMillis(v, int64(x))
	case int8:
		return c.fromMillis(v, int64(x))
	case int16:
		return c.fromMillis(v, int64(x))
	case int32:
		return c.fromMillis(v, int64(x))
	case int64:
		return c.fromMillis(v, x)
	case uint:
		return c.fromUnsigned(v, uint64(x))
	case uint8:
		return c.fromMillis(v, int64(x))
	case uint16:
		return c.fromMillis(v, int64(x))
	case uint32:
		return c.fromMillis(v, int64(x))
	case uint64:
		return c.fromUnsigned(v, x)
	case float32:
		return c.fromFloat(v, float64(x))
	case float64:
		return c.fromFloat(v, x)
	case epochMillis:
		return c.fromMillis(v, x.UnixMilli())
	}
	return time.Time{}, malformed(v, "unsupported type")
}

// Normalize coerces v and sets the time of day to 12:00:00
func (c *Calendar) Normalize(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, c.loc)
}

// NormalizeMonth coerces v and moves it to the first of its month at 12:00:00
func (c *Calendar) NormalizeMonth(v any) time.Time {
	t := c.Fix(v)
	return time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, c.loc)
}

// in strips the monotonic clock reading and moves t to the calendar location
func (c *Calendar) in(t time.Time) time.Time {
	return t.Round(0).In(c.loc)
}

func (c *Calendar) fromMillis(v any, ms int64) (time.Time, error) {
	if ms > maxEpochMillis || ms < -maxEpochMillis {
		return time.Time{}, malformed(v, "epoch milliseconds out of range")
	}
	return time.UnixMilli(ms).In(c.loc), nil
}

func (c *Calendar) fromUnsigned(v any, n uint64) (time.Time, error) {
	if n > maxEpochMillis {
		return time.Time{}, malformed(v, "epoch milliseconds out of range")
	}
	return c.fromMillis(v, int64(n))
}

func (c *Calendar) fromFloat(v any, f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, malformed(v, "not a number")
	}
	if math.Abs(f) > maxEpochMillis {
		return time.Time{}, malformed(v, "epoch milliseconds out of range")
	}
	return c.fromMillis(v, int64(math.Trunc(f)))
}

// parseString reads an integer string as epoch milliseconds, then tries the
// known layouts, then takes a leading integer as epoch milliseconds.
func (c *Calendar) parseString(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, malformed(s, "empty string")
	}

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return c.fromMillis(s, n)
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, c.loc); err == nil {
			return c.in(t), nil
		}
	}

	if prefix := leadingInteger(trimmed); prefix != "" {
		n, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			return time.Time{}, malformed(s, "epoch milliseconds out of range")
		}
		return c.fromMillis(s, n)
	}

	return time.Time{}, malformed(s, "not a date or epoch milliseconds")
}

// leadingInteger returns the optionally signed run of digits at the start of
// s, or "" if s does not start with a number.
func leadingInteger(s string) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return ""
	}
	return s[:end]
}

func malformed(v any, reason string) error {
	input := fmt.Sprintf("%v", v)
	if len(input) > 64 {
		input = input[:64] + "..."
	}
	return mdwerror.New("malformed instant: "+reason).
		WithCode(mdwerror.CodeInvalidInstant).
		WithOperation("timex.Parse").
		WithDetail("input", input).
		WithDetail("input_type", fmt.Sprintf("%T", v))
}
