package rating

import "time"

// Option configures an Engine.
type Option func(*Engine)

// WithSeasonStart sets the date the decay term counts weeks from.
func WithSeasonStart(start time.Time) Option {
	return func(e *Engine) {
		e.seasonStart = start
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
