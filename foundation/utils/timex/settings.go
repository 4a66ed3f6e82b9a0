// File: settings.go
// Title: Calendar Settings
// Description: Builds a Calendar from the [calendar] section of a
//              configuration file and a locale catalog.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package timex

import (
	"github.com/msto63/mdwcal/foundation/core/config"
	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	"github.com/msto63/mdwcal/foundation/core/i18n"
)

// Configuration keys read by LoadConfig
const (
	KeyFirstWeekday = "calendar.first_weekday"
	KeyTimeFormat   = "calendar.time_format"
	KeyLocale       = "calendar.locale"
)

// SettingsRules validates the [calendar] section
var SettingsRules = config.ValidationRules{
	KeyFirstWeekday: {
		Default: "monday",
	},
	KeyTimeFormat: {
		Default: "locale",
		OneOf:   []string{"locale", "0", "12", "12h", "24", "24h"},
	},
	KeyLocale: {
		Type:    "string",
		Default: "en",
		Pattern: `^[A-Za-z]{2,3}([_-][A-Za-z]{2})?$`,
	},
}

// LoadConfig validates cfg and builds a Calendar from it. Location, clock
// and logger are taken from base. A nil catalog selects the embedded one.
func LoadConfig(cfg *config.Config, catalog *i18n.Manager, base Config) (*Calendar, error) {
	if result := cfg.Validate(SettingsRules); !result.Valid {
		return nil, result.Err()
	}

	firstWeekday, err := ParseWeekday(cfg.GetString(KeyFirstWeekday, "monday"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid first weekday setting").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("timex.LoadConfig").
			WithDetail("key", KeyFirstWeekday)
	}

	timeFormat, err := ParseTimeFormat(cfg.GetString(KeyTimeFormat, "locale"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid time format setting").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("timex.LoadConfig").
			WithDetail("key", KeyTimeFormat)
	}

	if catalog == nil {
		if catalog, err = BuiltinCatalog(); err != nil {
			return nil, err
		}
	}

	locale, err := LocaleFromCatalog(catalog, cfg.GetString(KeyLocale, "en"))
	if err != nil {
		return nil, err
	}

	base.FirstWeekday = firstWeekday
	base.TimeFormat = timeFormat
	base.Locale = &locale
	return New(base)
}
