// File: locale.go
// Title: Locale Detection and Normalization
// Description: Normalizes locale identifiers and picks the best available
//              locale from POSIX environment values (de_DE.UTF-8) or
//              Accept-Language style preference lists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2025-08-14 v0.2.0: POSIX locale values, trimmed display names

package i18n

import (
	"os"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

// LocalePreference represents a locale preference with quality score
type LocalePreference struct {
	Locale  string  // Locale code (e.g., "en", "en-US", "de-DE")
	Quality float64 // Quality score (0.0 - 1.0)
}

// DetectLocale returns the best available locale for a preference list such
// as "de-CH, fr;q=0.8" or a POSIX value such as "fr_FR.UTF-8". The default
// locale is returned when nothing matches.
func (m *Manager) DetectLocale(preference string) string {
	preferences := parsePreferences(preference)
	if best := findBestLocaleMatch(preferences, m.GetAvailableLocales()); best != "" {
		return best
	}
	return m.GetDefaultLocale()
}

// DetectEnvLocale applies DetectLocale to LC_ALL, LC_TIME, LANG in that
// order, using the first one that is set
func (m *Manager) DetectEnvLocale() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := os.Getenv(name); value != "" && value != "C" && value != "POSIX" {
			return m.DetectLocale(value)
		}
	}
	return m.GetDefaultLocale()
}

func parsePreferences(value string) []LocalePreference {
	var preferences []LocalePreference

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		subParts := strings.Split(part, ";")
		tag := strings.TrimSpace(subParts[0])
		for _, subPart := range subParts[1:] {
			subPart = strings.TrimSpace(subPart)
			if strings.HasPrefix(subPart, "q=") {
				if q, err := strconv.ParseFloat(strings.TrimPrefix(subPart, "q="), 64); err == nil {
					quality = q
				}
			}
		}

		if normalized := NormalizeLocale(tag); normalized != "" {
			preferences = append(preferences, LocalePreference{Locale: normalized, Quality: quality})
		}
	}

	sort.SliceStable(preferences, func(i, j int) bool {
		return preferences[i].Quality > preferences[j].Quality
	})

	return preferences
}

func findBestLocaleMatch(preferences []LocalePreference, available []string) string {
	availableSet := make(map[string]bool, len(available))
	for _, locale := range available {
		availableSet[locale] = true
	}

	for _, pref := range preferences {
		if availableSet[pref.Locale] {
			return pref.Locale
		}

		lang, _ := SplitLocale(pref.Locale)
		if availableSet[lang] {
			return lang
		}

		for _, locale := range available {
			if strings.HasPrefix(locale, lang+"-") {
				return locale
			}
		}
	}

	return ""
}

// NormalizeLocale normalizes a locale to "ll" or "ll-CC". Codeset and
// modifier suffixes ("de_DE.UTF-8@euro") are dropped. Invalid input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(strings.ToLower(locale), "_", "-"), "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}

	return language
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US'")
	}
	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

var displayNames = map[string]string{
	"en":    "English",
	"en-US": "English (United States)",
	"en-GB": "English (United Kingdom)",
	"de":    "Deutsch",
	"de-DE": "Deutsch (Deutschland)",
	"de-AT": "Deutsch (Österreich)",
	"de-CH": "Deutsch (Schweiz)",
	"fr":    "Français",
	"fr-FR": "Français (France)",
	"fr-CA": "Français (Canada)",
}

// GetLocaleDisplayName returns a human-readable name for a locale
func GetLocaleDisplayName(locale string) string {
	normalized := NormalizeLocale(locale)
	if name, exists := displayNames[normalized]; exists {
		return name
	}
	if normalized != "" {
		return normalized
	}
	return locale
}
