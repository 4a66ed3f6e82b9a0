// File: calendar.go
// Title: Calendar Configuration
// Description: Defines the Calendar type that carries the week start, time
//              format, locale table, location, clock and logger used by all
//              calendar operations. A Calendar is immutable once built.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with business day configuration
// - 2025-08-14 v0.2.0: Replaced business day configuration with Calendar

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	mdwlog "github.com/msto63/mdwcal/foundation/core/log"
)

// TimeFormat selects 12-hour or 24-hour time rendering
type TimeFormat int

const (
	// TimeFormatLocale defers to the time format of the locale table
	TimeFormatLocale TimeFormat = 0
	// TwelveHour renders "3:05 PM"
	TwelveHour TimeFormat = 12
	// TwentyFourHour renders "15:05"
	TwentyFourHour TimeFormat = 24
)

// String returns the string representation of the time format
func (f TimeFormat) String() string {
	switch f {
	case TimeFormatLocale:
		return "locale"
	case TwelveHour:
		return "12h"
	case TwentyFourHour:
		return "24h"
	default:
		return "unknown"
	}
}

// IsValid reports whether f is a concrete format
func (f TimeFormat) IsValid() bool {
	return f == TwelveHour || f == TwentyFourHour
}

// ParseTimeFormat parses "12", "12h", "24", "24h" or "locale"
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "locale":
		return TimeFormatLocale, nil
	case "12", "12h":
		return TwelveHour, nil
	case "24", "24h":
		return TwentyFourHour, nil
	}
	return TimeFormatLocale, mdwerror.New(fmt.Sprintf("invalid time format %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseTimeFormat").
		WithDetail("value", s)
}

// Config holds the settings a Calendar is built from. Zero fields take the
// defaults: Monday as first weekday, the locale's time format, the English
// locale, host local time, the system clock and the default logger.
type Config struct {
	FirstWeekday WeekdayMask
	TimeFormat   TimeFormat
	Locale       *LocaleTable
	Location     *time.Location
	Clock        Clock
	Logger       *mdwlog.Logger
}

// DefaultConfig returns the configuration of the default calendar
func DefaultConfig() Config {
	return Config{
		FirstWeekday: Monday,
		TimeFormat:   TimeFormatLocale,
		Location:     time.Local,
		Clock:        SystemClock{},
	}
}

// Calendar performs calendar arithmetic and relative time formatting. It is
// safe for concurrent use.
type Calendar struct {
	firstWeekday WeekdayMask
	timeFormat   TimeFormat
	locale       LocaleTable
	loc          *time.Location
	clock        Clock
	logger       *mdwlog.Logger
}

// New validates config and builds a Calendar
func New(config Config) (*Calendar, error) {
	cal := &Calendar{
		firstWeekday: config.FirstWeekday,
		timeFormat:   config.TimeFormat,
		loc:          config.Location,
		clock:        config.Clock,
		logger:       config.Logger,
	}

	if cal.firstWeekday == 0 {
		cal.firstWeekday = Monday
	}
	if !cal.firstWeekday.IsSingle() {
		return nil, mdwerror.New("first weekday must be exactly one weekday").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("timex.New").
			WithDetail("first_weekday", strconv.Itoa(int(config.FirstWeekday)))
	}

	if config.Locale != nil {
		cal.locale = *config.Locale
	} else {
		cal.locale = EnglishLocale()
	}

	if cal.timeFormat == TimeFormatLocale {
		cal.timeFormat = cal.locale.TimeFormat
	}
	if cal.timeFormat == TimeFormatLocale {
		cal.timeFormat = TwelveHour
	}
	if !cal.timeFormat.IsValid() {
		return nil, mdwerror.New("time format must be 12 or 24").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("timex.New").
			WithDetail("time_format", int(config.TimeFormat))
	}

	if err := cal.locale.Validate(cal.timeFormat); err != nil {
		return nil, err
	}

	if cal.loc == nil {
		cal.loc = time.Local
	}
	if cal.clock == nil {
		cal.clock = SystemClock{}
	}

	return cal, nil
}

// WithClock returns a copy of the calendar that reads "now" from clock
func (c *Calendar) WithClock(clock Clock) *Calendar {
	clone := *c
	if clock == nil {
		clock = SystemClock{}
	}
	clone.clock = clock
	return &clone
}

// WithLogger returns a copy of the calendar that reports through logger
func (c *Calendar) WithLogger(logger *mdwlog.Logger) *Calendar {
	clone := *c
	clone.logger = logger
	return &clone
}

// FirstWeekday returns the weekday that starts a week
func (c *Calendar) FirstWeekday() WeekdayMask {
	return c.firstWeekday
}

// TimeFormat returns the effective time format
func (c *Calendar) TimeFormat() TimeFormat {
	return c.timeFormat
}

// Locale returns a copy of the locale table
func (c *Calendar) Locale() LocaleTable {
	return c.locale
}

// Location returns the location instants are expressed in
func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) log() *mdwlog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return mdwlog.GetDefault()
}

// String returns a short description of the calendar settings
func (c *Calendar) String() string {
	return fmt.Sprintf("Calendar{first_weekday=%s, time_format=%s, locale=%s, location=%s}",
		c.firstWeekday, c.timeFormat, c.locale.Name, c.loc)
}

// Default calendar backing the package-level functions
var (
	defaultCalendar *Calendar
	defaultMu       sync.RWMutex
)

func init() {
	cal, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	defaultCalendar = cal
}

// Default returns the default calendar
func Default() *Calendar {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCalendar
}

// SetDefault replaces the default calendar. A nil calendar is ignored.
func SetDefault(cal *Calendar) {
	if cal == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCalendar = cal
}
