// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for TOML and YAML configuration with
//              environment overrides and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Calendar settings, no hot reload

/*
Package config loads TOML and YAML configuration files.

Values are addressed with dot notation ("calendar.first_weekday"). Every
getter first consults the environment: with the prefix CALDATE the key
calendar.first_weekday is overridden by CALDATE_CALENDAR_FIRST_WEEKDAY.

Loading:

	cfg, err := config.Load("caldate.toml")

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", filepath.Join(home, ".config", "caldate")},
		Filenames: []string{"caldate"},
		EnvPrefix: "CALDATE",
	})

	cfg := config.New(config.LoadOptions{EnvPrefix: "CALDATE"})

Validation:

	result := cfg.Validate(config.ValidationRules{
		"calendar.first_weekday": {Type: "string", Default: "Sunday"},
		"log.level": {OneOf: []string{"debug", "info", "warn", "error", "off"}},
	})
	if err := result.Err(); err != nil {
		return err
	}

TOML integers decode as int64 and YAML integers as int. The numeric getters
accept both.
*/
package config
