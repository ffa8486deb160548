package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort     = "8080"
	defaultLanguage = "en"
	minSecretLength = 32
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

var supportedLanguages = map[string]struct{}{
	"en": {},
	"ru": {},
}

// AppConfig holds the server settings resolved from the environment.
type AppConfig struct {
	Port            string
	DBPath          string
	SecretKey       string
	Location        *time.Location
	DefaultLanguage string
	CookieSecure    bool
	LogLevel        string
	LogFile         string
}

// LoadDotEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}
}

// Load resolves the server configuration. Missing optional values fall back
// to defaults; invalid required ones are errors.
func Load() (*AppConfig, error) {
	secretKey, err := ResolveSecretKey()
	if err != nil {
		return nil, err
	}
	port, err := ResolvePort()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Port:            port,
		DBPath:          ResolveDBPath(),
		SecretKey:       secretKey,
		Location:        ResolveLocation(getEnv("TZ", "UTC")),
		DefaultLanguage: resolveLanguage(getEnv("DEFAULT_LANGUAGE", defaultLanguage)),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}, nil
}

func ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretLength)
	}
	return secret, nil
}

func ResolvePort() (string, error) {
	raw := strings.TrimSpace(os.Getenv("PORT"))
	if raw == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: out of range", raw)
	}
	return strconv.Itoa(port), nil
}

func ResolveDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "pocketlove.db"))
}

// ResolveLocation falls back to UTC when name is not a known zone.
func ResolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		log.Warn().Str("tz", name).Msg("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}

func resolveLanguage(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := supportedLanguages[language]; ok {
		return language
	}
	log.Warn().Str("language", raw).Msg("unsupported DEFAULT_LANGUAGE, using en")
	return defaultLanguage
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}
