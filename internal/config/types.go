package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Slack     SlackConfig
	Turso     TursoConfig
	ProjectID string
	Rating    RatingConfig
}
type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether notifications can be posted.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type RatingConfig struct {
	SeasonStart time.Time
	// Pause between players in a batch
	Delay time.Duration
	// Quiet period before coalesced match events are processed
	Debounce time.Duration
}
