// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment overrides, defaults,
//              discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-08-14 v0.2.0: Calendar keys, discovery and OneOf

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

const tomlContent = `
[calendar]
first_weekday = "Monday"
time_format = 24
locale = "de"
weekend = ["Saturday", "Sunday"]

[log]
level = "debug"
timeout = "2s"
verbose = true
`

const yamlContent = `
calendar:
  first_weekday: Sunday
  time_format: 12
  locale: en
log:
  level: warn
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "caldate.toml", tomlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if got := cfg.GetString("calendar.first_weekday"); got != "Monday" {
			t.Errorf("GetString() = %q, want Monday", got)
		}
		if got := cfg.GetInt("calendar.time_format"); got != 24 {
			t.Errorf("GetInt() = %d, want 24", got)
		}
		if got := cfg.GetBool("log.verbose"); !got {
			t.Error("GetBool() = false, want true")
		}
		if got := cfg.GetDuration("log.timeout"); got != 2*time.Second {
			t.Errorf("GetDuration() = %v, want 2s", got)
		}
		if got := cfg.GetStringSlice("calendar.weekend"); len(got) != 2 || got[0] != "Saturday" {
			t.Errorf("GetStringSlice() = %v", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "caldate.yaml", yamlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetInt("calendar.time_format"); got != 12 {
			t.Errorf("GetInt() = %d, want 12", got)
		}
		if got := cfg.GetString("calendar.locale"); got != "en" {
			t.Errorf("GetString() = %q, want en", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); err == nil {
			t.Error("Load() should reject a blank path")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "bad.toml", "[calendar\nx = "))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg := New(LoadOptions{
		Defaults: map[string]interface{}{
			"calendar.first_weekday": "Sunday",
			"calendar.time_format":   12,
		},
	})

	if got := cfg.GetString("calendar.first_weekday"); got != "Sunday" {
		t.Errorf("GetString() = %q, want Sunday", got)
	}
	if got := cfg.GetInt("calendar.time_format"); got != 12 {
		t.Errorf("GetInt() = %d, want 12", got)
	}
	if got := cfg.GetString("calendar.locale", "en"); got != "en" {
		t.Errorf("GetString() default = %q, want en", got)
	}

	keys := cfg.Keys()
	if len(keys) != 2 || keys[0] != "calendar.first_weekday" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestDefaultsDoNotOverrideFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "caldate.toml", tomlContent)
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:   FormatAuto,
		Defaults: map[string]interface{}{"calendar.first_weekday": "Sunday", "calendar.extra": "x"},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("calendar.first_weekday"); got != "Monday" {
		t.Errorf("file value overridden by default: %q", got)
	}
	if got := cfg.GetString("calendar.extra"); got != "x" {
		t.Errorf("default not merged: %q", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg = cfg.WithEnvPrefix("caldate")

	if key := cfg.EnvKey("calendar.first_weekday"); key != "CALDATE_CALENDAR_FIRST_WEEKDAY" {
		t.Errorf("EnvKey() = %q", key)
	}

	t.Setenv("CALDATE_CALENDAR_FIRST_WEEKDAY", "Saturday")
	t.Setenv("CALDATE_CALENDAR_TIME_FORMAT", "12")
	t.Setenv("CALDATE_CALENDAR_WEEKEND", "Friday, Saturday")

	if got := cfg.GetString("calendar.first_weekday"); got != "Saturday" {
		t.Errorf("GetString() = %q, want Saturday", got)
	}
	if got := cfg.GetInt("calendar.time_format"); got != 12 {
		t.Errorf("GetInt() = %d, want 12", got)
	}
	if got := cfg.GetStringSlice("calendar.weekend"); len(got) != 2 || got[1] != "Saturday" {
		t.Errorf("GetStringSlice() = %v", got)
	}
	if !cfg.Has("calendar.first_weekday") {
		t.Error("Has() should report overridden keys")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New(LoadOptions{})
	cfg.Set("calendar.locale", "fr")

	all := cfg.GetAll()
	section, ok := all["calendar"].(map[string]interface{})
	if !ok || section["locale"] != "fr" {
		t.Fatalf("GetAll() = %v", all)
	}

	section["locale"] = "xx"
	if cfg.GetString("calendar.locale") != "fr" {
		t.Error("GetAll() should return a copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	t.Run("optional and missing", func(t *testing.T) {
		cfg, err := Discover(DiscoveryOptions{
			Paths:     []string{dir},
			Filenames: []string{"caldate"},
			EnvPrefix: "MDWCAL_TEST",
			Defaults:  map[string]interface{}{"log.level": "warn"},
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != "" {
			t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
		}
		if cfg.GetString("log.level") != "warn" {
			t.Error("defaults not applied")
		}
	})

	t.Run("required and missing", func(t *testing.T) {
		_, err := Discover(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"caldate"}, Required: true})
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Discover() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("finds yaml", func(t *testing.T) {
		path := writeFile(t, dir, "caldate.yml", yamlContent)
		cfg, err := Discover(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"caldate"}})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg = cfg.WithEnvPrefix("MDWCAL_TEST")

	tests := []struct {
		name      string
		rules     ValidationRules
		wantValid bool
	}{
		{
			name:      "valid string",
			rules:     ValidationRules{"calendar.first_weekday": {Type: "string", Required: true}},
			wantValid: true,
		},
		{
			name:      "int within range",
			rules:     ValidationRules{"calendar.time_format": {Type: "int", Min: 12, Max: 24}},
			wantValid: true,
		},
		{
			name:      "int out of range",
			rules:     ValidationRules{"calendar.time_format": {Type: "int", Max: 12}},
			wantValid: false,
		},
		{
			name:      "wrong type",
			rules:     ValidationRules{"calendar.locale": {Type: "int"}},
			wantValid: false,
		},
		{
			name:      "missing required",
			rules:     ValidationRules{"calendar.zone": {Required: true}},
			wantValid: false,
		},
		{
			name:      "one of",
			rules:     ValidationRules{"log.level": {OneOf: []string{"DEBUG", "info"}}},
			wantValid: true,
		},
		{
			name:      "not one of",
			rules:     ValidationRules{"calendar.locale": {OneOf: []string{"en", "fr"}}},
			wantValid: false,
		},
		{
			name:      "pattern",
			rules:     ValidationRules{"calendar.locale": {Pattern: `^[a-z]{2}$`}},
			wantValid: true,
		},
		{
			name:      "slice",
			rules:     ValidationRules{"calendar.weekend": {Type: "[]string", Min: 1}},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cfg.Validate(tt.rules)
			if result.Valid != tt.wantValid {
				t.Errorf("Validate() valid = %v, want %v (errors %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if (result.Err() == nil) != tt.wantValid {
				t.Errorf("Err() = %v", result.Err())
			}
		})
	}
}

func TestValidateAppliesDefault(t *testing.T) {
	cfg := New(LoadOptions{})
	result := cfg.Validate(ValidationRules{"calendar.first_weekday": {Default: "Sunday"}})
	if !result.Valid {
		t.Fatalf("Validate() errors = %v", result.Errors)
	}
	if got := cfg.GetString("calendar.first_weekday"); got != "Sunday" {
		t.Errorf("default not applied: %q", got)
	}
}
