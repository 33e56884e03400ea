// Package config loads dsmanual configuration from environment variables.
// All variables use the DSMANUAL_ prefix; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// CataloguePath is a YAML catalogue to load instead of the built-in one.
	CataloguePath string

	// Seed fixes the draw order of flashcards and quiz questions. Zero means
	// a time-based seed.
	Seed int64

	Log    LogConfig
	Server ServerConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// ServerConfig holds HTTP host settings.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	SessionTTL     time.Duration
	SecureCookies  bool
	MaxSessions    int
}

// Load reads configuration from environment variables with the DSMANUAL_
// prefix. Malformed values are reported together in one error.
func Load() (*Config, error) {
	var l loader
	cfg := &Config{
		CataloguePath: l.str("DSMANUAL_CATALOGUE", ""),
		Seed:          l.int64("DSMANUAL_SEED", 0),
		Log: LogConfig{
			Level:  l.str("DSMANUAL_LOG_LEVEL", "info"),
			Format: l.str("DSMANUAL_LOG_FORMAT", "text"),
			File:   l.str("DSMANUAL_LOG_FILE", ""),
		},
		Server: ServerConfig{
			Addr:           l.str("DSMANUAL_ADDR", ":8080"),
			AllowedOrigins: l.list("DSMANUAL_ALLOWED_ORIGINS"),
			SessionTTL:     l.duration("DSMANUAL_SESSION_TTL", 30*time.Minute),
			SecureCookies:  l.bool("DSMANUAL_SECURE_COOKIES", false),
			MaxSessions:    int(l.int64("DSMANUAL_MAX_SESSIONS", 10000)),
		},
	}
	if err := errors.Join(l.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// named) into the environment. Variables already set are never overridden and
// missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks that settings are in range.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format))
	}
	if c.Server.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session TTL must be positive, got %s", c.Server.SessionTTL))
	}
	if c.Server.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("max sessions must be positive, got %d", c.Server.MaxSessions))
	}
	return errors.Join(errs...)
}

type loader struct {
	errs []error
}

func (l *loader) str(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (l *loader) int64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return fallback
	}
	return i
}

func (l *loader) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: invalid boolean %q", key, v))
		return fallback
	}
	return b
}

func (l *loader) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return fallback
	}
	return d
}

func (l *loader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
