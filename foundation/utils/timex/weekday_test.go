// File: weekday_test.go
// Title: Weekday Mask Tests
// Description: Tests for weekday masks, ordinals and ISO week numbers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial test implementation

package timex

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

func TestWeekdayMaskGroups(t *testing.T) {
	if AllDays != 127 {
		t.Errorf("AllDays = %d, want 127", AllDays)
	}
	if Workdays != 62 {
		t.Errorf("Workdays = %d, want 62", Workdays)
	}
	if Weekends != 65 {
		t.Errorf("Weekends = %d, want 65", Weekends)
	}
	if !Workdays.Has(Monday|Friday) || Workdays.Has(Saturday) {
		t.Error("Workdays.Has() mismatch")
	}
	if Monday.Has(0) {
		t.Error("Has(0) should be false")
	}
}

func TestWeekdayMaskPredicates(t *testing.T) {
	testCases := []struct {
		mask   WeekdayMask
		valid  bool
		single bool
	}{
		{0, false, false},
		{Sunday, true, true},
		{Saturday, true, true},
		{Weekends, true, false},
		{128, false, false},
		{Monday | 128, false, false},
	}

	for _, tc := range testCases {
		if got := tc.mask.IsValid(); got != tc.valid {
			t.Errorf("WeekdayMask(%d).IsValid() = %v, want %v", tc.mask, got, tc.valid)
		}
		if got := tc.mask.IsSingle(); got != tc.single {
			t.Errorf("WeekdayMask(%d).IsSingle() = %v, want %v", tc.mask, got, tc.single)
		}
	}
}

func TestWeekdayMaskString(t *testing.T) {
	testCases := []struct {
		mask WeekdayMask
		want string
	}{
		{Monday, "Monday"},
		{Monday | Friday, "Monday|Friday"},
		{Weekends, "Saturday|Sunday"},
		{0, "None"},
		{200, "WeekdayMask(200)"},
	}

	for _, tc := range testCases {
		if got := tc.mask.String(); got != tc.want {
			t.Errorf("WeekdayMask(%d).String() = %q, want %q", uint8(tc.mask), got, tc.want)
		}
	}
}

func TestMaskForWeekday(t *testing.T) {
	if got := MaskForWeekday(time.Sunday); got != Sunday {
		t.Errorf("MaskForWeekday(Sunday) = %v, want Sunday", got)
	}
	if got := MaskForWeekday(time.Wednesday); got != Wednesday {
		t.Errorf("MaskForWeekday(Wednesday) = %v, want Wednesday", got)
	}
	if got := MaskForWeekday(7); got != 0 {
		t.Errorf("MaskForWeekday(7) = %v, want 0", got)
	}

	w, ok := Thursday.Weekday()
	if !ok || w != time.Thursday {
		t.Errorf("Thursday.Weekday() = %v, %v", w, ok)
	}
	if _, ok := Workdays.Weekday(); ok {
		t.Error("Workdays.Weekday() should fail")
	}
}

func TestParseWeekday(t *testing.T) {
	testCases := []struct {
		input   string
		want    WeekdayMask
		wantErr bool
	}{
		{"monday", Monday, false},
		{"Monday", Monday, false},
		{"wed", Wednesday, false},
		{"SUN", Sunday, false},
		{"workdays", Workdays, false},
		{"weekends", Weekends, false},
		{"mon|fri", Monday | Friday, false},
		{"sat, sun", Weekends, false},
		{"2", Monday, false},
		{"127", AllDays, false},
		{"128", 0, true},
		{"Montag", 0, true},
		{"", 0, true},
		{"mon|", Monday, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseWeekday(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidWeekday) {
				t.Errorf("ParseWeekday(%q) code = %v, want %v", tc.input, mdwerror.GetCode(err), mdwerror.CodeInvalidWeekday)
			}
			if got != tc.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDotw(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		day     time.Time
		mask    WeekdayMask
		ordinal int
	}{
		{date(2024, 6, 10, 0, 0, 0), Monday, 1},
		{date(2024, 6, 12, 0, 0, 0), Wednesday, 3},
		{date(2024, 6, 15, 0, 0, 0), Saturday, 6},
		{date(2024, 6, 16, 23, 59, 59), Sunday, 7},
	}

	for _, tc := range testCases {
		if got := cal.Dotw(tc.day); got != tc.mask {
			t.Errorf("Dotw(%v) = %v, want %v", tc.day, got, tc.mask)
		}
		if got := cal.DotwInt(tc.day); got != tc.ordinal {
			t.Errorf("DotwInt(%v) = %d, want %d", tc.day, got, tc.ordinal)
		}
	}
}

func TestDotwForInt(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	if got := cal.DotwForInt(0); got != Monday {
		t.Errorf("DotwForInt(0) = %v, want Monday", got)
	}
	if got := cal.DotwForInt(6); got != Sunday {
		t.Errorf("DotwForInt(6) = %v, want Sunday", got)
	}
	if got := cal.DotwForInt(7); got != 0 {
		t.Errorf("DotwForInt(7) = %v, want 0", got)
	}
	if got := cal.DotwForInt(-1); got != 0 {
		t.Errorf("DotwForInt(-1) = %v, want 0", got)
	}

	// DotwForInt inverts DotwInt for every day of a week
	for i := 0; i < 7; i++ {
		d := date(2024, 6, 10+i, 8, 0, 0)
		if got, want := cal.DotwForInt(cal.DotwInt(d)-1), cal.Dotw(d); got != want {
			t.Errorf("DotwForInt(DotwInt(%v)-1) = %v, want %v", d, got, want)
		}
	}
}

func TestISOWeek(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		day      time.Time
		week     int
		weekYear int
	}{
		{date(2015, 1, 1, 0, 0, 0), 1, 2015},
		{date(2014, 12, 31, 0, 0, 0), 1, 2015},
		{date(2016, 1, 4, 0, 0, 0), 1, 2016},
		{date(2016, 1, 3, 0, 0, 0), 53, 2015},
		{date(2021, 1, 3, 0, 0, 0), 53, 2020},
		{date(2024, 6, 15, 0, 0, 0), 24, 2024},
		{date(2024, 12, 30, 0, 0, 0), 1, 2025},
		{date(2026, 12, 31, 0, 0, 0), 53, 2026},
	}

	for _, tc := range testCases {
		if got := cal.ISOWeek(tc.day); got != tc.week {
			t.Errorf("ISOWeek(%v) = %d, want %d", tc.day.Format(ISO8601Date), got, tc.week)
		}
		year, week := cal.ISOWeekYear(tc.day)
		if year != tc.weekYear || week != tc.week {
			t.Errorf("ISOWeekYear(%v) = %d-W%d, want %d-W%d", tc.day.Format(ISO8601Date), year, week, tc.weekYear, tc.week)
		}

		// Agrees with the standard library
		stdYear, stdWeek := tc.day.ISOWeek()
		if stdYear != year || stdWeek != week {
			t.Errorf("ISOWeekYear(%v) disagrees with time.ISOWeek: %d-W%d", tc.day.Format(ISO8601Date), stdYear, stdWeek)
		}
	}
}
