// File: weekday.go
// Title: Weekday Masks and ISO Weeks
// Description: Implements the weekday bit mask (Sunday=1 ... Saturday=64),
//              its named groups, parsing and formatting, the Monday-first
//              weekday ordinal and ISO-8601 week numbers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Weekday type with string conversion
// - 2025-08-14 v0.2.0: Weekday bit masks, ordinals and ISO weeks

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

// WeekdayMask is a set of weekdays, one bit per day
type WeekdayMask uint8

const (
	Sunday WeekdayMask = 1 << iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Named weekday groups
const (
	AllDays  = Sunday | Monday | Tuesday | Wednesday | Thursday | Friday | Saturday
	Workdays = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekends = Saturday | Sunday
)

// mondayFirst lists the single-day masks by Monday-first ordinal
var mondayFirst = [7]WeekdayMask{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = map[string]WeekdayMask{
	"sunday":    Sunday,
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"all":       AllDays,
	"alldays":   AllDays,
	"workdays":  Workdays,
	"weekdays":  Workdays,
	"weekends":  Weekends,
}

// MaskForWeekday returns the single-day mask for w, or 0 if w is out of range
func MaskForWeekday(w time.Weekday) WeekdayMask {
	if w < time.Sunday || w > time.Saturday {
		return 0
	}
	return WeekdayMask(1) << uint(w)
}

// Has reports whether every day of other is in m. An empty other is never
// contained.
func (m WeekdayMask) Has(other WeekdayMask) bool {
	return other != 0 && m&other == other
}

// Intersects reports whether m and other share at least one day
func (m WeekdayMask) Intersects(other WeekdayMask) bool {
	return m&other != 0
}

// IsValid reports whether m names at least one day and nothing else
func (m WeekdayMask) IsValid() bool {
	return m != 0 && m&^AllDays == 0
}

// IsSingle reports whether m names exactly one day
func (m WeekdayMask) IsSingle() bool {
	return m.IsValid() && m&(m-1) == 0
}

// Weekday returns the time.Weekday of a single-day mask
func (m WeekdayMask) Weekday() (time.Weekday, bool) {
	if !m.IsSingle() {
		return 0, false
	}
	for w := time.Sunday; w <= time.Saturday; w++ {
		if MaskForWeekday(w) == m {
			return w, true
		}
	}
	return 0, false
}

// Days returns the weekdays of m in Monday-first order
func (m WeekdayMask) Days() []time.Weekday {
	var days []time.Weekday
	for _, day := range mondayFirst {
		if m&day != 0 {
			w, _ := day.Weekday()
			days = append(days, w)
		}
	}
	return days
}

// String returns the day names of m joined by "|", e.g. "Monday|Friday"
func (m WeekdayMask) String() string {
	if m == 0 {
		return "None"
	}
	if !m.IsValid() {
		return fmt.Sprintf("WeekdayMask(%d)", uint8(m))
	}
	names := make([]string, 0, 7)
	for _, w := range m.Days() {
		names = append(names, w.String())
	}
	return strings.Join(names, "|")
}

// ParseWeekday parses an English weekday name ("monday"), its three-letter
// abbreviation ("mon"), a group name ("workdays") or a numeric mask. Several
// values can be combined with "|" or ",".
func ParseWeekday(s string) (WeekdayMask, error) {
	var mask WeekdayMask
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, part := range parts {
		day, err := parseWeekdayPart(strings.ToLower(strings.TrimSpace(part)))
		if err != nil {
			return 0, mdwerror.Wrap(err, fmt.Sprintf("invalid weekday %q", s)).
				WithCode(mdwerror.CodeInvalidWeekday).
				WithOperation("timex.ParseWeekday").
				WithDetail("value", s)
		}
		mask |= day
	}
	if mask == 0 {
		return 0, mdwerror.New(fmt.Sprintf("invalid weekday %q", s)).
			WithCode(mdwerror.CodeInvalidWeekday).
			WithOperation("timex.ParseWeekday").
			WithDetail("value", s)
	}
	return mask, nil
}

func parseWeekdayPart(part string) (WeekdayMask, error) {
	if part == "" {
		return 0, fmt.Errorf("empty weekday")
	}
	if mask, ok := weekdayNames[part]; ok {
		return mask, nil
	}
	if len(part) == 3 {
		for name, mask := range weekdayNames {
			if mask.IsSingle() && strings.HasPrefix(name, part) {
				return mask, nil
			}
		}
	}
	if n, err := strconv.ParseUint(part, 10, 8); err == nil {
		mask := WeekdayMask(n)
		if mask.IsValid() {
			return mask, nil
		}
		return 0, fmt.Errorf("mask %d out of range", n)
	}
	return 0, fmt.Errorf("unknown weekday %q", part)
}

// ===============================
// Weekday Queries
// ===============================

// Dotw returns the single-day mask of the weekday of v
func (c *Calendar) Dotw(v any) WeekdayMask {
	return MaskForWeekday(c.Fix(v).Weekday())
}

// DotwInt returns the weekday ordinal of v, Monday=1 ... Sunday=7
func (c *Calendar) DotwInt(v any) int {
	return isoWeekday(c.Fix(v))
}

// DotwForInt maps a zero-based Monday-first ordinal (0=Monday ... 6=Sunday)
// to its mask. Out-of-range ordinals yield 0.
func (c *Calendar) DotwForInt(ordinal int) WeekdayMask {
	if ordinal < 0 || ordinal >= len(mondayFirst) {
		return 0
	}
	return mondayFirst[ordinal]
}

// ISOWeek returns the ISO-8601 week number of v
func (c *Calendar) ISOWeek(v any) int {
	_, week := isoWeek(c.Fix(v))
	return week
}

// ISOWeekYear returns the ISO-8601 week-numbering year and week of v. The
// year differs from the calendar year around January 1st.
func (c *Calendar) ISOWeekYear(v any) (year, week int) {
	return isoWeek(c.Fix(v))
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// isoWeek moves t to the Thursday of its week; that Thursday's year is the
// week-numbering year and its day of year gives the week.
func isoWeek(t time.Time) (year, week int) {
	thursday := t.AddDate(0, 0, 4-isoWeekday(t))
	return thursday.Year(), (thursday.YearDay()-1)/7 + 1
}
