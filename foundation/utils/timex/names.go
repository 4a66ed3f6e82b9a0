// File: names.go
// Title: Calendar Display Names
// Description: Weekday, month and ordinal names read from the "calendar"
//              section of an i18n catalog, used by the command line tool
//              and the month browser to label dates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package timex

import (
	"strconv"
	"time"

	"github.com/msto63/mdwcal/foundation/core/i18n"
)

// NamesPrefix is the catalog section holding display names
const NamesPrefix = "calendar"

// Names holds localized display names. Weekday arrays are Monday first.
type Names struct {
	Locale        string
	Weekdays      [7]string
	WeekdaysShort [7]string
	Months        [12]string
	WeekShort     string
	Ordinals      []string

	catalog *i18n.Manager
}

// EnglishNames returns English names without a catalog
func EnglishNames() Names {
	n := Names{
		Locale:    "en",
		WeekShort: "Wk",
		Ordinals:  []string{"1st", "2nd", "3rd", "4th", "5th"},
	}
	for i, mask := range mondayFirst {
		wd, _ := mask.Weekday()
		n.Weekdays[i] = wd.String()
		n.WeekdaysShort[i] = wd.String()[:2]
	}
	for m := time.January; m <= time.December; m++ {
		n.Months[m-1] = m.String()
	}
	return n
}

// NamesFromCatalog reads the names for locale from m. Lists of the wrong
// length and missing keys keep the English names.
func NamesFromCatalog(m *i18n.Manager, locale string) Names {
	n := EnglishNames()
	n.Locale = i18n.NormalizeLocale(locale)
	n.catalog = m

	fill := func(key string, dst []string) {
		if forms, ok := m.Forms(n.Locale, NamesPrefix+"."+key); ok && len(forms) == len(dst) {
			copy(dst, forms)
		}
	}
	fill("weekdays", n.Weekdays[:])
	fill("weekdays_short", n.WeekdaysShort[:])
	fill("months", n.Months[:])

	if forms, ok := m.Forms(n.Locale, NamesPrefix+".week_short"); ok {
		n.WeekShort = forms[0]
	}
	if forms, ok := m.Forms(n.Locale, NamesPrefix+".ordinals"); ok {
		n.Ordinals = forms
	}
	return n
}

// BuiltinNames returns the names for locale from the embedded catalogs
func BuiltinNames(locale string) (Names, error) {
	m, err := BuiltinCatalog()
	if err != nil {
		return Names{}, err
	}
	return NamesFromCatalog(m, locale), nil
}

// Weekday returns the name of a single-day mask; other masks are rendered
// by WeekdayMask.String
func (n Names) Weekday(mask WeekdayMask) string {
	if i, ok := mondayIndex(mask); ok {
		return n.Weekdays[i]
	}
	return mask.String()
}

// WeekdayShort returns the short name of a single-day mask
func (n Names) WeekdayShort(mask WeekdayMask) string {
	if i, ok := mondayIndex(mask); ok {
		return n.WeekdaysShort[i]
	}
	return mask.String()
}

// Month returns the name of m
func (n Names) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return n.Months[m-1]
}

// Ordinal returns the label of the k-th occurrence, 1-based
func (n Names) Ordinal(k int) string {
	if k >= 1 && k <= len(n.Ordinals) {
		return n.Ordinals[k-1]
	}
	return strconv.Itoa(k) + "."
}

// Nth renders the k-th occurrence of a weekday, e.g. "2nd Tuesday"
func (n Names) Nth(k int, mask WeekdayMask) string {
	ordinal, weekday := n.Ordinal(k), n.Weekday(mask)
	if n.catalog != nil {
		text, err := n.catalog.TryTLocale(n.Locale, NamesPrefix+".nth", map[string]interface{}{
			"ordinal": ordinal,
			"weekday": weekday,
		})
		if err == nil {
			return text
		}
	}
	return joinTokens(ordinal, weekday)
}

func mondayIndex(mask WeekdayMask) (int, bool) {
	for i, m := range mondayFirst {
		if m == mask {
			return i, true
		}
	}
	return 0, false
}
