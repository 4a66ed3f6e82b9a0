// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package documentation for catalog loading, plural forms and
//              locale detection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: fs.FS catalogs for embedded locales

/*
Package i18n manages translation catalogs.

A catalog is one TOML or YAML file per locale, named after the locale
(en.toml, de.toml, fr.yaml, de-CH.toml). Catalogs are read from a directory
or from any fs.FS, which lets a package embed its defaults:

	//go:embed locales/*
	var locales embed.FS

	sub, _ := fs.Sub(locales, "locales")
	manager, err := i18n.New(i18n.Options{DefaultLocale: "en", FS: sub})

Further catalogs can be layered on top; keys of a known locale are merged:

	err = manager.LoadFS(os.DirFS(userDir))

Keys use dot notation. A value may be a string, which can contain
text/template actions, or an array of plural forms:

	[relative]
	day = ["day", "days"]

	[cli]
	week_of = "Week {{.week}} of {{.year}}"

	manager.PluralLocale("de", "relative.day", 3, nil)        // "Tage"
	manager.T("cli.week_of", map[string]interface{}{"week": 9, "year": 2024})

Lookups fall back from "de-CH" to "de" and then to the default locale.
Missing keys render as "[key]" from T and Plural, and as a NOT_FOUND error
from TryT.

Locale detection understands POSIX values and preference lists:

	manager.DetectLocale("fr_CA.UTF-8")         // "fr"
	manager.DetectLocale("es, de;q=0.8")        // "de"
	manager.DetectEnvLocale()                   // from LC_ALL, LC_TIME, LANG
*/
package i18n
