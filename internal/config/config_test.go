package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	now := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{"DB_NAME": "club.db", "PORT": "8080"}), now)
		require.NoError(t, err)
		assert.Equal(t, "club.db", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 200*time.Millisecond, cfg.Rating.Delay)
		assert.Equal(t, 2*time.Second, cfg.Rating.Debounce)
		assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), cfg.Rating.SeasonStart)
		assert.False(t, cfg.Slack.Enabled())
		assert.Empty(t, cfg.ProjectID)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			"DB_NAME":          "club.db",
			"PORT":             "8080",
			"SLACK_BOT_TOKEN":  "xoxb",
			"SLACK_CHANNEL_ID": "C1",
			"SEASON_START":     "2025-10-01",
			"RECALC_DELAY":     "0s",
			"RECALC_DEBOUNCE":  "500ms",
			"GCP_PROJECT":      "club",
		}), now)
		require.NoError(t, err)
		assert.True(t, cfg.Slack.Enabled())
		assert.Equal(t, time.Duration(0), cfg.Rating.Delay)
		assert.Equal(t, 500*time.Millisecond, cfg.Rating.Debounce)
		assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), cfg.Rating.SeasonStart)
		assert.Equal(t, "club", cfg.ProjectID)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := FromEnv(lookupFrom(map[string]string{"PORT": "8080"}), now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("invalid values", func(t *testing.T) {
		base := map[string]string{"DB_NAME": "club.db", "PORT": "8080"}
		for key, value := range map[string]string{
			"SEASON_START":    "01.10.2025",
			"RECALC_DELAY":    "soon",
			"RECALC_DEBOUNCE": "-1s",
		} {
			env := map[string]string{key: value}
			for k, v := range base {
				env[k] = v
			}
			_, err := FromEnv(lookupFrom(env), now)
			assert.Error(t, err, key)
		}
	})
}

func TestDefaultSeasonStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC), time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC), time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultSeasonStart(tt.now), tt.now.String())
	}
}
