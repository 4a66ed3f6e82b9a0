// File: names_test.go
// Title: Calendar Display Name Tests
// Description: Tests for weekday, month and ordinal names.
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
	"testing/fstest"
	"time"

	"github.com/msto63/mdwcal/foundation/core/i18n"
)

func TestEnglishNames(t *testing.T) {
	n := EnglishNames()

	if got := n.Weekday(Monday); got != "Monday" {
		t.Errorf("Weekday(Monday) = %q", got)
	}
	if got := n.WeekdayShort(Sunday); got != "Su" {
		t.Errorf("WeekdayShort(Sunday) = %q", got)
	}
	if got := n.Weekday(Weekends); got != "Saturday|Sunday" {
		t.Errorf("Weekday(Weekends) = %q", got)
	}
	if got := n.Month(time.February); got != "February" {
		t.Errorf("Month(February) = %q", got)
	}
	if got := n.Nth(2, Tuesday); got != "2nd Tuesday" {
		t.Errorf("Nth(2, Tuesday) = %q", got)
	}
	if got := n.Ordinal(9); got != "9." {
		t.Errorf("Ordinal(9) = %q", got)
	}
}

func TestBuiltinNames(t *testing.T) {
	testCases := []struct {
		locale  string
		weekday string
		month   string
		week    string
		nth     string
	}{
		{"en", "Thursday", "March", "Wk", "3rd Thursday"},
		{"de", "Donnerstag", "März", "KW", "3. Donnerstag"},
		{"fr-CA", "jeudi", "mars", "Sem", "3e jeudi"},
		{"it", "Thursday", "March", "Wk", "3rd Thursday"},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			n, err := BuiltinNames(tc.locale)
			if err != nil {
				t.Fatalf("BuiltinNames(%q) error = %v", tc.locale, err)
			}
			if got := n.Weekday(Thursday); got != tc.weekday {
				t.Errorf("Weekday(Thursday) = %q, want %q", got, tc.weekday)
			}
			if got := n.Month(time.March); got != tc.month {
				t.Errorf("Month(March) = %q, want %q", got, tc.month)
			}
			if n.WeekShort != tc.week {
				t.Errorf("WeekShort = %q, want %q", n.WeekShort, tc.week)
			}
			if got := n.Nth(3, Thursday); got != tc.nth {
				t.Errorf("Nth(3, Thursday) = %q, want %q", got, tc.nth)
			}
		})
	}
}

func TestNamesIgnoreShortLists(t *testing.T) {
	fsys := fstest.MapFS{
		"en.toml": {Data: []byte("[calendar]\nweekdays = [\"Mon\", \"Tue\"]\nmonths = \"nope\"\n")},
	}
	m, err := i18n.New(i18n.Options{DefaultLocale: "en", FS: fsys})
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}

	n := NamesFromCatalog(m, "en")
	if got := n.Weekday(Monday); got != "Monday" {
		t.Errorf("Weekday(Monday) = %q, want the English name", got)
	}
	if got := n.Month(time.May); got != "May" {
		t.Errorf("Month(May) = %q, want the English name", got)
	}
	if got := n.Nth(1, Friday); got != "1st Friday" {
		t.Errorf("Nth() without template = %q", got)
	}
}
