// File: arithmetic_test.go
// Title: Arithmetic Tests
// Description: Tests for unit shifts, rounding, field getters and setters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Rounding tests
// - 2025-08-14 v0.2.0: Unit shifts, field getters and setters

package timex

import (
	"testing"
	"time"
)

func TestAddSub(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"AddSeconds", cal.AddSeconds(testNow, 90), date(2024, 6, 15, 12, 1, 30)},
		{"AddMinutes", cal.AddMinutes(testNow, -15), date(2024, 6, 15, 11, 45, 0)},
		{"AddHours", cal.AddHours(testNow, 13), date(2024, 6, 16, 1, 0, 0)},
		{"AddDays", cal.AddDays(testNow, 20), date(2024, 7, 5, 12, 0, 0)},
		{"AddMonths", cal.AddMonths(testNow, 7), date(2025, 1, 15, 12, 0, 0)},
		{"AddYears", cal.AddYears(testNow, -4), date(2020, 6, 15, 12, 0, 0)},
		{"SubSeconds", cal.SubSeconds(testNow, 1), date(2024, 6, 15, 11, 59, 59)},
		{"SubMinutes", cal.SubMinutes(testNow, 720), date(2024, 6, 15, 0, 0, 0)},
		{"SubHours", cal.SubHours(testNow, 24), date(2024, 6, 14, 12, 0, 0)},
		{"SubDays", cal.SubDays(testNow, 15), date(2024, 5, 31, 12, 0, 0)},
		{"SubMonths", cal.SubMonths(testNow, 6), date(2023, 12, 15, 12, 0, 0)},
		{"SubYears", cal.SubYears(testNow, 1), date(2023, 6, 15, 12, 0, 0)},
		{"String input", cal.AddDays("2024-06-15", 1), date(2024, 6, 16, 0, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestAddMonthsOverflow(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"Jan 31 leap year", cal.AddMonths(date(2024, 1, 31, 0, 0, 0), 1), date(2024, 3, 2, 0, 0, 0)},
		{"Jan 31 common year", cal.AddMonths(date(2023, 1, 31, 0, 0, 0), 1), date(2023, 3, 3, 0, 0, 0)},
		{"Mar 31 minus one", cal.SubMonths(date(2024, 3, 31, 0, 0, 0), 1), date(2024, 3, 2, 0, 0, 0)},
		{"Feb 29 plus a year", cal.AddYears(date(2024, 2, 29, 0, 0, 0), 1), date(2025, 3, 1, 0, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestAddSubDaysRoundTrip(t *testing.T) {
	cal := newTestCalendar(t, Config{})
	d := date(2024, 2, 27, 18, 45, 10)

	for _, n := range []int{0, 1, 7, 30, 365, -12} {
		if got := cal.AddDays(cal.SubDays(d, n), n); !got.Equal(d) {
			t.Errorf("AddDays(SubDays(d, %d), %d) = %v, want %v", n, n, got, d)
		}
	}
}

func TestAddDaysBeyondDurationRange(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		n    int
		want time.Time
	}{
		{110000, date(2325, 8, 17, 12, 0, 0)},
		{200000, date(2572, 1, 14, 12, 0, 0)},
		{-200000, date(1476, 11, 15, 12, 0, 0)},
	}

	for _, tc := range testCases {
		if got := cal.AddDays(testNow, tc.n); !got.Equal(tc.want) {
			t.Errorf("AddDays(now, %d) = %v, want %v", tc.n, got, tc.want)
		}
		if got := cal.SubDays(tc.want, tc.n); !got.Equal(testNow) {
			t.Errorf("SubDays(%v, %d) = %v, want %v", tc.want, tc.n, got, testNow)
		}
	}

	if got, want := cal.AddHours(testNow, 24*200000), date(2572, 1, 14, 12, 0, 0); !got.Equal(want) {
		t.Errorf("AddHours(now, 4800000) = %v, want %v", got, want)
	}
}

func TestShift(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	got, ok := cal.Shift(testNow, -2, UnitWeek)
	if !ok || !got.Equal(date(2024, 6, 1, 12, 0, 0)) {
		t.Errorf("Shift(-2 weeks) = %v, %v", got, ok)
	}
	got, ok = cal.Shift(testNow, 3, UnitMonth)
	if !ok || !got.Equal(date(2024, 9, 15, 12, 0, 0)) {
		t.Errorf("Shift(3 months) = %v, %v", got, ok)
	}
	if _, ok := cal.Shift(testNow, 1, Unit("fortnight")); ok {
		t.Error("Shift() accepted an unknown unit")
	}
}

func TestRound(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		input time.Time
		want  time.Time
	}{
		{date(2024, 6, 15, 10, 32, 45), date(2024, 6, 15, 10, 30, 0)},
		{date(2024, 6, 15, 10, 33, 0), date(2024, 6, 15, 10, 35, 0)},
		{date(2024, 6, 15, 10, 57, 30), date(2024, 6, 15, 10, 55, 0)},
		{date(2024, 6, 15, 10, 58, 10), date(2024, 6, 15, 11, 0, 0)},
		{date(2024, 6, 15, 23, 58, 0), date(2024, 6, 16, 0, 0, 0)},
		{time.Date(2024, 6, 15, 10, 0, 0, 999, time.UTC), date(2024, 6, 15, 10, 0, 0)},
	}

	for _, tc := range testCases {
		if got := cal.Round(tc.input); !got.Equal(tc.want) {
			t.Errorf("Round(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFieldGetters(t *testing.T) {
	cal := newTestCalendar(t, Config{})
	d := date(2024, 3, 9, 13, 7, 5)

	if got := cal.Hour(d, false); got != 13 {
		t.Errorf("Hour(24h) = %d, want 13", got)
	}
	if got := cal.Hour(d, true); got != 1 {
		t.Errorf("Hour(12h) = %d, want 1", got)
	}
	if got := cal.Hour(date(2024, 3, 9, 0, 15, 0), true); got != 12 {
		t.Errorf("Hour(12h midnight) = %d, want 12", got)
	}
	if got := cal.Hour(date(2024, 3, 9, 12, 0, 0), true); got != 12 {
		t.Errorf("Hour(12h noon) = %d, want 12", got)
	}
	if got := cal.Minute(d); got != 7 {
		t.Errorf("Minute() = %d, want 7", got)
	}
	if got := cal.Second(d); got != 5 {
		t.Errorf("Second() = %d, want 5", got)
	}
	if got := cal.Day(d); got != 9 {
		t.Errorf("Day() = %d, want 9", got)
	}
	if got := cal.Month(d); got != 3 {
		t.Errorf("Month() = %d, want 3", got)
	}
	if got := cal.Year(d); got != 2024 {
		t.Errorf("Year() = %d, want 2024", got)
	}
}

func TestPad(t *testing.T) {
	testCases := []struct {
		n    int
		lead bool
		want string
	}{
		{5, true, "05"},
		{5, false, "5"},
		{0, true, "00"},
		{12, true, "12"},
	}

	for _, tc := range testCases {
		if got := Pad(tc.n, tc.lead); got != tc.want {
			t.Errorf("Pad(%d, %v) = %q, want %q", tc.n, tc.lead, got, tc.want)
		}
	}
}

func TestSetters(t *testing.T) {
	cal := newTestCalendar(t, Config{})
	a := time.Date(2024, 6, 15, 10, 20, 30, 500_000_000, time.UTC)
	b := date(2024, 1, 2, 8, 0, 0)

	if got, want := cal.SetSameDay(a, b), date(2024, 1, 2, 10, 20, 30); !got.Equal(want) {
		t.Errorf("SetSameDay() = %v, want %v", got, want)
	}
	if got, want := cal.SetStartOfDay(a), date(2024, 6, 15, 0, 0, 0); !got.Equal(want) {
		t.Errorf("SetStartOfDay() = %v, want %v", got, want)
	}

	// End of day keeps the sub-second part of the input
	want := time.Date(2024, 6, 15, 23, 59, 59, 500_000_000, time.UTC)
	if got := cal.SetEndOfDay(a); !got.Equal(want) {
		t.Errorf("SetEndOfDay() = %v, want %v", got, want)
	}

	if !a.Equal(time.Date(2024, 6, 15, 10, 20, 30, 500_000_000, time.UTC)) {
		t.Error("setters modified their input")
	}
}
