// Package config loads runtime settings from the environment, with an
// optional .env file for local development. Every setting has a default
// suitable for analyzing a recent season, so the zero-configuration path
// just works.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/logger"
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/scraper"
)

// Config carries every setting the analysis pipeline reads from the
// environment. Command-line flags override these values.
type Config struct {
	// Fetching
	URLTemplate string
	HTTPTimeout time.Duration
	MaxRetries  int

	// Extraction
	TableSelector string

	// Dataset columns and sentinels
	RankColumn       string
	PlayerColumn     string
	TeamColumn       string
	AgeColumn        string
	MinutesColumn    string
	CombinedSentinel string

	// Output
	Season int
	OutDir string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment", nil)
	}

	return &Config{
		URLTemplate: getEnv("NBA_TOTALS_URL_TEMPLATE", scraper.TotalsURLTemplate),
		HTTPTimeout: getEnvDuration("NBA_HTTP_TIMEOUT", scraper.Timeout),
		MaxRetries:  getEnvInt("NBA_HTTP_RETRIES", scraper.MaxRetries),

		TableSelector: getEnv("NBA_TABLE_SELECTOR", "table#totals_stats"),

		RankColumn:       getEnv("NBA_RANK_COLUMN", "Rk"),
		PlayerColumn:     getEnv("NBA_PLAYER_COLUMN", "Player"),
		TeamColumn:       getEnv("NBA_TEAM_COLUMN", "Tm"),
		AgeColumn:        getEnv("NBA_AGE_COLUMN", "Age"),
		MinutesColumn:    getEnv("NBA_MINUTES_COLUMN", "MP"),
		CombinedSentinel: getEnv("NBA_COMBINED_SENTINEL", "TOT"),

		Season: getEnvInt("NBA_SEASON", 2017),
		OutDir: getEnv("NBA_OUT_DIR", "./out"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("invalid integer in environment, using default", logger.Fields{
			"key":     key,
			"value":   value,
			"default": fallback,
		})
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid duration in environment, using default", logger.Fields{
			"key":     key,
			"value":   value,
			"default": fallback.String(),
		})
		return fallback
	}
	return d
}
