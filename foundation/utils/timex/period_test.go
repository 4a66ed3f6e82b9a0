// File: period_test.go
// Title: Period Tests
// Description: Tests for weekday enumeration, n-th weekdays, week start and
//              month and week boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Start/end of period tests
// - 2025-08-14 v0.2.0: Weekday enumeration, n-th weekday and week start

package timex

import (
	"testing"
	"time"
)

func TestDotwArrFor(t *testing.T) {
	cal := newTestCalendar(t, Config{})
	june := date(2024, 6, 15, 9, 30, 0)

	testCases := []struct {
		name string
		mask WeekdayMask
		days []int
	}{
		{"Mondays", Monday, []int{3, 10, 17, 24}},
		{"Saturdays", Saturday, []int{1, 8, 15, 22, 29}},
		{"Monday and Friday", Monday | Friday, []int{3, 7, 10, 14, 17, 21, 24, 28}},
		{"Weekends", Weekends, []int{1, 2, 8, 9, 15, 16, 22, 23, 29, 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cal.DotwArrFor(june, tc.mask)
			if !ok {
				t.Fatalf("DotwArrFor(%v) returned no result", tc.mask)
			}
			if len(got) != len(tc.days) {
				t.Fatalf("DotwArrFor(%v) = %d days, want %d", tc.mask, len(got), len(tc.days))
			}
			for i, day := range tc.days {
				if want := date(2024, 6, day, 0, 0, 0); !got[i].Equal(want) {
					t.Errorf("DotwArrFor(%v)[%d] = %v, want %v", tc.mask, i, got[i], want)
				}
			}
		})
	}
}

func TestDotwArrForInvalidMask(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	for _, mask := range []WeekdayMask{0, 128} {
		if got, ok := cal.DotwArrFor(testNow, mask); ok || got != nil {
			t.Errorf("DotwArrFor(%d) = %v, %v, want nil, false", uint8(mask), got, ok)
		}
	}
}

func TestNthDayArr(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	t.Run("First occurrences", func(t *testing.T) {
		got := cal.NthDayArr(date(2024, 6, 20, 0, 0, 0), 1)
		want := map[WeekdayMask]int{
			Saturday: 1, Sunday: 2, Monday: 3, Tuesday: 4,
			Wednesday: 5, Thursday: 6, Friday: 7,
		}
		if len(got) != 7 {
			t.Fatalf("NthDayArr(1) has %d entries, want 7", len(got))
		}
		for mask, day := range want {
			if d, ok := got.Get(mask); !ok || !d.Equal(date(2024, 6, day, 0, 0, 0)) {
				t.Errorf("NthDayArr(1)[%v] = %v, %v, want June %d", mask, d, ok, day)
			}
		}
	})

	t.Run("Fifth occurrence in leap February", func(t *testing.T) {
		// February 2024 starts on a Thursday and has 29 days
		got := cal.NthDayArr(date(2024, 2, 1, 0, 0, 0), 5)
		if len(got) != 1 {
			t.Fatalf("NthDayArr(5) has %d entries, want 1: %v", len(got), got)
		}
		if d, ok := got.Get(Thursday); !ok || !d.Equal(date(2024, 2, 29, 0, 0, 0)) {
			t.Errorf("NthDayArr(5)[Thursday] = %v, %v, want 2024-02-29", d, ok)
		}
		if _, ok := got.Get(Friday); ok {
			t.Error("NthDayArr(5)[Friday] should be absent")
		}
	})

	t.Run("Fifth occurrence in common February", func(t *testing.T) {
		if got := cal.NthDayArr(date(2023, 2, 10, 0, 0, 0), 5); len(got) != 0 {
			t.Errorf("NthDayArr(5) = %v, want no entries", got)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if got := cal.NthDayArr(testNow, 0); len(got) != 0 {
			t.Errorf("NthDayArr(0) = %v, want no entries", got)
		}
	})

	t.Run("Sorted", func(t *testing.T) {
		sorted := cal.NthDayArr(testNow, 2).Sorted()
		if len(sorted) != 7 {
			t.Fatalf("Sorted() has %d entries, want 7", len(sorted))
		}
		for i := 1; i < len(sorted); i++ {
			if !sorted[i-1].Before(sorted[i]) {
				t.Errorf("Sorted() not ascending at %d", i)
			}
		}
		if !sorted[0].Equal(date(2024, 6, 8, 0, 0, 0)) {
			t.Errorf("Sorted()[0] = %v, want 2024-06-08", sorted[0])
		}
	})
}

func TestWeekStart(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{"Monday itself", date(2024, 6, 10, 8, 0, 0), date(2024, 6, 10, 8, 0, 0)},
		{"Saturday", date(2024, 6, 15, 12, 0, 0), date(2024, 6, 10, 12, 0, 0)},
		{"Sunday", date(2024, 6, 16, 12, 0, 0), date(2024, 6, 10, 12, 0, 0)},
		{"Tuesday", date(2024, 6, 11, 12, 0, 0), date(2024, 6, 10, 12, 0, 0)},
		{"Across new year", date(2025, 1, 1, 0, 0, 0), date(2024, 12, 30, 0, 0, 0)},
		{"Sunday across new year", date(2023, 1, 1, 0, 0, 0), date(2022, 12, 26, 0, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.WeekStart(tc.day); !got.Equal(tc.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestWeekStartProperties(t *testing.T) {
	cal := newTestCalendar(t, Config{})
	start := date(2023, 12, 1, 6, 0, 0)

	for i := 0; i < 120; i++ {
		d := start.AddDate(0, 0, i)
		ws := cal.WeekStart(d)

		if cal.Dotw(ws) != Monday {
			t.Errorf("WeekStart(%v) = %v is not a Monday", d, ws)
		}
		if !cal.SameWeek(ws, d) {
			t.Errorf("WeekStart(%v) = %v is in another week", d, ws)
		}
		if days := cal.DaysBetween(ws, d); days > 6 {
			t.Errorf("WeekStart(%v) = %v is %d days away", d, ws, days)
		}
		if ws.After(d) {
			t.Errorf("WeekStart(%v) = %v is after the day", d, ws)
		}
	}
}

func TestWeekStartSunday(t *testing.T) {
	cal := newTestCalendar(t, Config{FirstWeekday: Sunday})

	// Sundays close an ISO week, so the start found inside the same ISO
	// week is the following Sunday.
	testCases := []struct {
		day  time.Time
		want time.Time
	}{
		{date(2024, 6, 16, 0, 0, 0), date(2024, 6, 16, 0, 0, 0)},
		{date(2024, 6, 15, 0, 0, 0), date(2024, 6, 16, 0, 0, 0)},
		{date(2024, 6, 10, 0, 0, 0), date(2024, 6, 16, 0, 0, 0)},
	}

	for _, tc := range testCases {
		got := cal.WeekStart(tc.day)
		if !got.Equal(tc.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", tc.day, got, tc.want)
		}
		if !cal.SameWeek(got, tc.day) {
			t.Errorf("WeekStart(%v) = %v is in another week", tc.day, got)
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	if got, want := cal.StartForYearAndMonth(2024, time.February), date(2024, 2, 1, 0, 0, 0); !got.Equal(want) {
		t.Errorf("StartForYearAndMonth() = %v, want %v", got, want)
	}
	if got, want := cal.EndForYearAndMonth(2024, time.February), date(2024, 2, 29, 23, 59, 59); !got.Equal(want) {
		t.Errorf("EndForYearAndMonth() = %v, want %v", got, want)
	}
	if got, want := cal.EndForYearAndMonth(2023, time.December), date(2023, 12, 31, 23, 59, 59); !got.Equal(want) {
		t.Errorf("EndForYearAndMonth(December) = %v, want %v", got, want)
	}
	if got, want := cal.StartOfMonth(date(2024, 4, 17, 8, 30, 0)), date(2024, 4, 1, 0, 0, 0); !got.Equal(want) {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
	if got, want := cal.EndOfMonth(date(2024, 4, 17, 8, 30, 0)), date(2024, 4, 30, 23, 59, 59); !got.Equal(want) {
		t.Errorf("EndOfMonth() = %v, want %v", got, want)
	}

	lastDays := []struct {
		day  time.Time
		want int
	}{
		{date(2023, 2, 10, 0, 0, 0), 28},
		{date(2024, 2, 10, 0, 0, 0), 29},
		{date(2024, 4, 30, 0, 0, 0), 30},
		{date(2024, 12, 5, 0, 0, 0), 31},
	}
	for _, tc := range lastDays {
		if got := cal.LastDotm(tc.day); got != tc.want {
			t.Errorf("LastDotm(%v) = %d, want %d", tc.day, got, tc.want)
		}
	}
}

func TestWeekBoundaries(t *testing.T) {
	cal := newTestCalendar(t, Config{})

	testCases := []struct {
		year, week int
		start, end time.Time
	}{
		{2024, 1, date(2024, 1, 1, 0, 0, 0), date(2024, 1, 7, 23, 59, 59)},
		{2024, 2, date(2024, 1, 8, 0, 0, 0), date(2024, 1, 14, 23, 59, 59)},
		{2024, 53, date(2024, 12, 30, 0, 0, 0), date(2025, 1, 5, 23, 59, 59)},
		{2023, 9, date(2023, 2, 26, 0, 0, 0), date(2023, 3, 4, 23, 59, 59)},
	}

	for _, tc := range testCases {
		if got := cal.StartForYearAndWeek(tc.year, tc.week); !got.Equal(tc.start) {
			t.Errorf("StartForYearAndWeek(%d, %d) = %v, want %v", tc.year, tc.week, got, tc.start)
		}
		if got := cal.EndForYearAndWeek(tc.year, tc.week); !got.Equal(tc.end) {
			t.Errorf("EndForYearAndWeek(%d, %d) = %v, want %v", tc.year, tc.week, got, tc.end)
		}
	}
}
