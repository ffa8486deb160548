package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// EmbeddedLocales exposes the bundled locale files rooted at their directory.
func EmbeddedLocales() fs.FS {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	return locales
}

const (
	LangRU = "ru"
	LangEN = "en"
)

var formatVerbPattern = regexp.MustCompile(`%[-+# 0]*\d*(?:\.\d+)?[a-zA-Z]`)

type Manager struct {
	defaultLanguage string
	catalogs        map[string]map[string]string
	supported       []string
}

// NewManager loads every *.json file at the root of locales. Both en and ru
// must be present, and a key translated in both must take the same format
// verbs in the same order.
func NewManager(defaultLanguage string, locales fs.FS) (*Manager, error) {
	catalogs, err := loadCatalogs(locales)
	if err != nil {
		return nil, err
	}
	for _, required := range []string{LangEN, LangRU} {
		if _, ok := catalogs[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}
	if err := checkFormatVerbs(catalogs[LangEN], catalogs[LangRU]); err != nil {
		return nil, err
	}

	manager := &Manager{catalogs: catalogs}
	for language := range catalogs {
		manager.supported = append(manager.supported, language)
	}
	sort.Strings(manager.supported)

	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func loadCatalogs(locales fs.FS) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	catalogs := map[string]map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		language := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))

		content, err := fs.ReadFile(locales, name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}
		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}
		catalogs[language] = messages
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no locales found")
	}
	return catalogs, nil
}

func checkFormatVerbs(reference map[string]string, other map[string]string) error {
	for key, text := range reference {
		translated, ok := other[key]
		if !ok {
			continue
		}
		if !slices.Equal(formatVerbPattern.FindAllString(text, -1), formatVerbPattern.FindAllString(translated, -1)) {
			return fmt.Errorf("locale key %q has mismatched format verbs", key)
		}
	}
	return nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return slices.Clone(manager.supported)
}

// NormalizeLanguage reduces a tag like "ru_RU" to a supported base language,
// or the default.
func (manager *Manager) NormalizeLanguage(raw string) string {
	if language := baseLanguage(raw); manager.isSupported(language) {
		return language
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the supported language with the highest
// q-value. Ties keep header order.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	best := ""
	bestQuality := 0.0
	for _, part := range strings.Split(header, ",") {
		tag, quality := parseAcceptLanguagePart(part)
		language := baseLanguage(tag)
		if !manager.isSupported(language) || quality <= bestQuality {
			continue
		}
		best, bestQuality = language, quality
	}
	if best == "" {
		return manager.defaultLanguage
	}
	return best
}

// Translate looks key up in language, then the default language, and
// finally returns the key itself.
func (manager *Manager) Translate(language string, key string) string {
	for _, candidate := range []string{manager.NormalizeLanguage(language), manager.defaultLanguage} {
		if value := strings.TrimSpace(manager.catalogs[candidate][key]); value != "" {
			return manager.catalogs[candidate][key]
		}
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func (manager *Manager) isSupported(language string) bool {
	_, ok := manager.catalogs[language]
	return language != "" && ok
}

func parseAcceptLanguagePart(part string) (string, float64) {
	fields := strings.Split(part, ";")
	tag := strings.TrimSpace(fields[0])
	quality := 1.0
	for _, param := range fields[1:] {
		name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(name) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return tag, 0
		}
		quality = parsed
	}
	return tag, quality
}

func baseLanguage(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	language = strings.ReplaceAll(language, "_", "-")
	language, _, _ = strings.Cut(language, "-")
	return language
}
