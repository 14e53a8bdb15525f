package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"boothplan/internal/i18n"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	DatabaseURL      string
	TokenSecret      string
	Token            string
	Locale           language.Tag
	StateDir         string
	FreeContentLimit int
	AccessWarnRatio  float64
	TrialWarnDays    int
	RequestTimeout   time.Duration
	DBMaxConns       int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TokenSecret:      os.Getenv("AUTH_TOKEN_SECRET"),
		Token:            os.Getenv("PLANNER_TOKEN"),
		StateDir:         getEnv("STATE_DIR", defaultStateDir()),
		FreeContentLimit: getEnvInt("FREE_CONTENT_LIMIT", 30),
		AccessWarnRatio:  getEnvFloat("ACCESS_WARN_RATIO", 0.8),
		TrialWarnDays:    getEnvInt("TRIAL_WARN_DAYS", 3),
		RequestTimeout:   time.Second * time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 5),
	}

	locale, err := i18n.Resolve(os.Getenv("LOCALE"))
	if err != nil {
		return nil, fmt.Errorf("LOCALE is invalid: %w", err)
	}
	cfg.Locale = locale

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET is required")
	}

	if cfg.AccessWarnRatio <= 0 || cfg.AccessWarnRatio > 1 {
		return nil, fmt.Errorf("ACCESS_WARN_RATIO must be in (0, 1], got %v", cfg.AccessWarnRatio)
	}

	return cfg, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".boothplan"
	}
	return filepath.Join(home, ".boothplan")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
