package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultDelay    = 200 * time.Millisecond
	defaultDebounce = 2 * time.Second
	dateLayout      = "2006-01-02"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	cfg, err := FromEnv(os.LookupEnv, time.Now())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool), now time.Time) (Config, error) {
	var missing []string
	// A helper function to get a required env var.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	optional := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Slack: SlackConfig{
			Token:     optional("SLACK_BOT_TOKEN"),
			ChannelID: optional("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: optional("TURSO_PRIMARY_URL"),
			AuthToken:  optional("TURSO_AUTH_TOKEN"),
		},
		ProjectID: optional("GCP_PROJECT"),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %v", missing)
	}

	var err error
	if cfg.Rating.SeasonStart, err = parseSeasonStart(optional("SEASON_START"), now); err != nil {
		return Config{}, err
	}
	if cfg.Rating.Delay, err = parseDuration("RECALC_DELAY", optional("RECALC_DELAY"), defaultDelay); err != nil {
		return Config{}, err
	}
	if cfg.Rating.Debounce, err = parseDuration("RECALC_DEBOUNCE", optional("RECALC_DEBOUNCE"), defaultDebounce); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative duration", key, value)
	}
	return d, nil
}

func parseSeasonStart(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return DefaultSeasonStart(now), nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid SEASON_START %q: %w", value, err)
	}
	return t, nil
}

// DefaultSeasonStart returns the most recent April 1st or October 1st at or
// before now, in UTC.
func DefaultSeasonStart(now time.Time) time.Time {
	now = now.UTC()
	year := now.Year()
	switch {
	case now.Month() >= time.October:
		return time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
	case now.Month() >= time.April:
		return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(year-1, time.October, 1, 0, 0, 0, 0, time.UTC)
	}
}
