// File: locale.go
// Title: Relative Time Locale Tables
// Description: Defines the label table used by the relative time formatter,
//              the built-in English table and loading of tables from i18n
//              catalogs. Catalogs for en, de and fr are embedded.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package timex

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	"github.com/msto63/mdwcal/foundation/core/i18n"
)

//go:embed locales/*
var localeFiles embed.FS

// CatalogPrefix is the catalog section holding the relative time labels
const CatalogPrefix = "relative"

// UnitLabel holds the singular and plural label of a unit
type UnitLabel struct {
	One   string
	Other string
}

// For returns the label for n; values above one take the plural
func (u UnitLabel) For(n int64) string {
	if n > 1 || n < -1 {
		return u.Other
	}
	return u.One
}

// LocaleTable holds every label the relative time formatter emits. Blank
// prefixes and suffixes are skipped when phrases are joined.
type LocaleTable struct {
	Name       string
	TimeFormat TimeFormat

	TimeAM     string
	TimePM     string
	TimePrefix string

	PastPrefix   string
	PastSuffix   string
	FuturePrefix string
	FutureSuffix string
	PastShort    string
	FutureShort  string
	Present      string
	Yesterday    string
	Tomorrow     string

	Second UnitLabel
	Minute UnitLabel
	Hour   UnitLabel
	Day    UnitLabel
	Week   UnitLabel
	Month  UnitLabel
	Year   UnitLabel
}

// EnglishLocale returns the built-in English table
func EnglishLocale() LocaleTable {
	return LocaleTable{
		Name:         "en",
		TimeFormat:   TwelveHour,
		TimeAM:       "AM",
		TimePM:       "PM",
		TimePrefix:   "at",
		PastPrefix:   "",
		PastSuffix:   "ago",
		FuturePrefix: "in",
		FutureSuffix: "",
		PastShort:    "just now",
		FutureShort:  "in a bit",
		Present:      "now",
		Yesterday:    "yesterday",
		Tomorrow:     "tomorrow",
		Second:       UnitLabel{One: "second", Other: "seconds"},
		Minute:       UnitLabel{One: "minute", Other: "minutes"},
		Hour:         UnitLabel{One: "hour", Other: "hours"},
		Day:          UnitLabel{One: "day", Other: "days"},
		Week:         UnitLabel{One: "week", Other: "weeks"},
		Month:        UnitLabel{One: "month", Other: "months"},
		Year:         UnitLabel{One: "year", Other: "years"},
	}
}

// Validate checks that no required label is blank. AM and PM labels are
// required only for the 12-hour format.
func (l LocaleTable) Validate(format TimeFormat) error {
	required := map[string]string{
		"past_short":   l.PastShort,
		"future_short": l.FutureShort,
		"present":      l.Present,
		"yesterday":    l.Yesterday,
		"tomorrow":     l.Tomorrow,
	}
	units := map[string]UnitLabel{
		"second": l.Second,
		"minute": l.Minute,
		"hour":   l.Hour,
		"day":    l.Day,
		"week":   l.Week,
		"month":  l.Month,
		"year":   l.Year,
	}
	for name, unit := range units {
		required[name] = unit.One
		required[name+"_plural"] = unit.Other
	}
	if format == TwelveHour {
		required["am"] = l.TimeAM
		required["pm"] = l.TimePM
	}

	var missing []string
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return mdwerror.New(fmt.Sprintf("locale %q has blank labels: %s", l.Name, strings.Join(missing, ", "))).
		WithCode(mdwerror.CodeInvalidLocale).
		WithOperation("timex.LocaleTable.Validate").
		WithDetail("locale", l.Name).
		WithDetail("missing", missing)
}

// LocaleFromCatalog builds a table from the "relative" section of a
// catalog. Keys missing in the locale fall back the way the manager
// resolves them; keys missing everywhere keep the English label.
func LocaleFromCatalog(m *i18n.Manager, locale string) (LocaleTable, error) {
	name := i18n.NormalizeLocale(locale)
	if !m.HasLocale(name) {
		lang, _ := i18n.SplitLocale(name)
		if !m.HasLocale(lang) {
			return LocaleTable{}, mdwerror.New(fmt.Sprintf("locale %q not available", locale)).
				WithCode(mdwerror.CodeInvalidLocale).
				WithOperation("timex.LocaleFromCatalog").
				WithDetail("locale", locale).
				WithDetail("available", m.GetAvailableLocales())
		}
	}

	table := EnglishLocale()
	table.Name = name

	text := func(key string, dst *string) {
		if forms, ok := m.Forms(name, CatalogPrefix+"."+key); ok {
			*dst = forms[0]
		}
	}
	unit := func(key string, dst *UnitLabel) {
		if forms, ok := m.Forms(name, CatalogPrefix+"."+key); ok {
			dst.One = forms[0]
			dst.Other = forms[len(forms)-1]
		}
	}

	var format string
	text("time_format", &format)
	if format != "" {
		tf, err := ParseTimeFormat(format)
		if err != nil {
			return LocaleTable{}, mdwerror.Wrap(err, "invalid time format in catalog").
				WithCode(mdwerror.CodeInvalidLocale).
				WithOperation("timex.LocaleFromCatalog").
				WithDetail("locale", name)
		}
		table.TimeFormat = tf
	}

	text("am", &table.TimeAM)
	text("pm", &table.TimePM)
	text("time_prefix", &table.TimePrefix)
	text("past_prefix", &table.PastPrefix)
	text("past_suffix", &table.PastSuffix)
	text("future_prefix", &table.FuturePrefix)
	text("future_suffix", &table.FutureSuffix)
	text("past_short", &table.PastShort)
	text("future_short", &table.FutureShort)
	text("present", &table.Present)
	text("yesterday", &table.Yesterday)
	text("tomorrow", &table.Tomorrow)

	unit("second", &table.Second)
	unit("minute", &table.Minute)
	unit("hour", &table.Hour)
	unit("day", &table.Day)
	unit("week", &table.Week)
	unit("month", &table.Month)
	unit("year", &table.Year)

	return table, nil
}

var (
	builtinOnce    sync.Once
	builtinCatalog *i18n.Manager
	builtinErr     error
)

// LocaleFS returns the embedded catalog files
func LocaleFS() fs.FS {
	sub, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// BuiltinCatalog returns the manager holding the embedded catalogs
func BuiltinCatalog() (*i18n.Manager, error) {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = i18n.New(i18n.Options{
			DefaultLocale: "en",
			FS:            LocaleFS(),
		})
	})
	return builtinCatalog, builtinErr
}

// BuiltinLocale returns the embedded table for locale, e.g. "de" or "fr-FR"
func BuiltinLocale(locale string) (LocaleTable, error) {
	m, err := BuiltinCatalog()
	if err != nil {
		return LocaleTable{}, err
	}
	return LocaleFromCatalog(m, locale)
}
