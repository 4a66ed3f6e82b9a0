// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager: loading TOML and YAML catalogs
//              from a directory or an fs.FS, template interpolation and
//              plural forms with fallback to the default locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization,
//                       improved cache key uniqueness for plural forms
// - 2025-08-14 v0.2.0: fs.FS loading, per-locale lookups, no hot reload

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts both TOML and YAML files (default)
	FormatAuto Format = iota

	// FormatTOML accepts only .toml files
	FormatTOML

	// FormatYAML accepts only .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	LocalesDir    string // Directory containing language files, used when FS is nil
	FS            fs.FS  // Catalog file system, files at its root
	Format        Format // Accepted file formats
	NoFallback    bool   // Disable fallback to the default locale
}

// Manager manages translations for a set of locales
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	format        Format
	fallback      bool
	translations  map[string]TranslationData

	tmplMu    sync.Mutex
	templates map[string]*template.Template
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// New creates a new i18n manager with the specified options
func New(options Options) (*Manager, error) {
	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.New")
	}

	fsys := options.FS
	if fsys == nil {
		dir := options.LocalesDir
		if strings.TrimSpace(dir) == "" {
			dir = "./locales"
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, mdwerror.New("locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", dir)
		}
		fsys = os.DirFS(dir)
	}

	manager := &Manager{
		defaultLocale: defaultLocale,
		currentLocale: defaultLocale,
		format:        options.Format,
		fallback:      !options.NoFallback,
		translations:  make(map[string]TranslationData),
		templates:     make(map[string]*template.Template),
	}

	if err := manager.LoadFS(fsys); err != nil {
		return nil, err
	}

	if !manager.HasLocale(defaultLocale) {
		return nil, mdwerror.New(fmt.Sprintf("default locale '%s' not found", defaultLocale)).
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.New").
			WithDetail("locale", defaultLocale)
	}

	return manager, nil
}

// LoadFS loads every catalog at the root of fsys. Keys of an already known
// locale are merged, later files win.
func (m *Manager) LoadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.LoadFS")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if !m.acceptsExtension(ext) {
			continue
		}

		locale := NormalizeLocale(strings.TrimSuffix(name, path.Ext(name)))
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return mdwerror.Wrap(err, "failed to read locale file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("i18n.LoadFS").
				WithDetail("file", name)
		}

		data, err := parseCatalog(content, ext)
		if err != nil {
			return mdwerror.Wrap(err, "failed to parse locale file").
				WithCode(mdwerror.CodeInvalidLocale).
				WithOperation("i18n.LoadFS").
				WithDetail("file", name)
		}

		m.mu.Lock()
		if existing, ok := m.translations[locale]; ok {
			mergeTranslations(existing, data)
		} else {
			m.translations[locale] = data
		}
		m.mu.Unlock()
	}

	m.tmplMu.Lock()
	m.templates = make(map[string]*template.Template)
	m.tmplMu.Unlock()

	return nil
}

func (m *Manager) acceptsExtension(ext string) bool {
	for _, e := range m.format.extensions() {
		if ext == e {
			return true
		}
	}
	return false
}

func parseCatalog(content []byte, ext string) (TranslationData, error) {
	data := make(TranslationData)
	if ext == ".toml" {
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
		return data, nil
	}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func mergeTranslations(dst, src map[string]interface{}) {
	for k, v := range src {
		srcMap, srcIsMap := asMap(v)
		dstMap, dstIsMap := asMap(dst[k])
		if srcIsMap && dstIsMap {
			mergeTranslations(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case TranslationData:
		return m, true
	}
	return nil, false
}

// T translates a key in the current locale with optional template data.
// Missing keys render as "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryT translates a key in the current locale and reports missing keys
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	return m.TryTLocale(m.GetCurrentLocale(), key, data...)
}

// TryTLocale translates a key in the given locale
func (m *Manager) TryTLocale(locale, key string, data ...map[string]interface{}) (string, error) {
	locale = NormalizeLocale(locale)

	m.mu.RLock()
	forms, found := m.lookupForms(key, locale)
	m.mu.RUnlock()

	if !found || len(forms) == 0 {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	translation := forms[0]
	if len(data) > 0 && data[0] != nil {
		rendered, err := m.renderTemplate(locale+":"+key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("i18n.renderTemplate").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// Plural returns the plural form of key that matches count in the current
// locale
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	return m.PluralLocale(m.GetCurrentLocale(), key, count, data)
}

// PluralLocale returns the plural form of key that matches count in locale
func (m *Manager) PluralLocale(locale, key string, count int, data map[string]interface{}) string {
	locale = NormalizeLocale(locale)

	m.mu.RLock()
	forms, found := m.lookupForms(key, locale)
	m.mu.RUnlock()

	if !found || len(forms) == 0 {
		return fmt.Sprintf("[%s]", key)
	}

	formIndex := getPluralFormIndex(count, locale)
	if formIndex >= len(forms) {
		formIndex = len(forms) - 1
	}

	selectedForm := forms[formIndex]
	if data != nil {
		cacheKey := fmt.Sprintf("%s:%s_plural_%d", locale, key, formIndex)
		if rendered, err := m.renderTemplate(cacheKey, selectedForm, data); err == nil {
			return rendered
		}
	}

	return selectedForm
}

// Forms returns all forms stored under key for locale. A plain string yields
// a single form. The second result is false when the key is missing from
// both the locale and the fallback.
func (m *Manager) Forms(locale, key string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookupForms(key, NormalizeLocale(locale))
}

// lookupForms resolves key in locale, then in the base language of locale,
// then in the default locale. Callers hold m.mu.
func (m *Manager) lookupForms(key, locale string) ([]string, bool) {
	candidates := []string{locale}
	if lang, _ := SplitLocale(locale); lang != "" && lang != locale {
		candidates = append(candidates, lang)
	}
	if m.fallback && locale != m.defaultLocale {
		candidates = append(candidates, m.defaultLocale)
	}

	for _, candidate := range candidates {
		translations, ok := m.translations[candidate]
		if !ok {
			continue
		}
		if forms := parsePluralForms(getNestedRawValue(translations, key)); len(forms) > 0 {
			return forms, true
		}
	}
	return nil, false
}

func getNestedRawValue(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := asMap(current[k])
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

func parsePluralForms(value interface{}) []string {
	switch v := value.(type) {
	case []interface{}:
		forms := make([]string, len(v))
		for i, item := range v {
			forms[i] = fmt.Sprintf("%v", item)
		}
		return forms
	case []string:
		return append([]string(nil), v...)
	case string:
		return []string{v}
	case nil, map[string]interface{}, TranslationData:
		return nil
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

func (m *Manager) renderTemplate(cacheKey, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(cacheKey).Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[cacheKey] = tmpl
	}
	m.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

// getPluralFormIndex returns the plural form index for count in locale
func getPluralFormIndex(count int, locale string) int {
	lang, _ := SplitLocale(locale)
	switch lang {
	case "fr":
		if count <= 1 && count >= -1 {
			return 0
		}
		return 1
	default:
		if count == 1 || count == -1 {
			return 0
		}
		return 1
	}
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	normalized := NormalizeLocale(locale)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.translations[normalized]; !exists {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}

	m.currentLocale = normalized
	return nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns a sorted list of all loaded locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is available
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.translations[NormalizeLocale(locale)]
	return exists
}

// HasTranslation checks if a translation key exists in the current locale
// or its fallback
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, found := m.lookupForms(key, m.currentLocale)
	return found
}

// GetTranslationKeys returns all translation keys of the current locale
func (m *Manager) GetTranslationKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translations := m.translations[m.currentLocale]
	if translations == nil {
		return nil
	}

	keys := collectKeys(translations, "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := asMap(value); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
		} else {
			keys = append(keys, fullKey)
		}
	}

	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, format: %s, fallback: %t, locales: %d}",
		m.defaultLocale, m.currentLocale, m.format, m.fallback, len(m.translations))
}
