package rating

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/club-lk/internal/metrics"
	"gopkg.in/guregu/null.v4"
)

var (
	// ErrPlayerLoad wraps read failures for the player being recalculated.
	ErrPlayerLoad = errors.New("failed to load player data")
	// ErrPersist wraps a failed write of the new rating.
	ErrPersist = errors.New("failed to persist rating")
)

// Engine recalculates LK ratings by replaying a player's match history.
type Engine struct {
	repo        Repository
	metrics     metrics.Metrics
	seasonStart time.Time
	now         func() time.Time
	locks       *playerLocks

	mu        sync.RWMutex
	listeners []Listener
}

// Result describes one recalculation.
type Result struct {
	PlayerID         string  `json:"player_id"`
	StartRating      float64 `json:"start_rating"`
	NewRating        float64 `json:"new_rating"`
	MatchesCounted   int     `json:"matches_counted"`
	TotalImprovement float64 `json:"total_improvement"`
	DecayApplied     float64 `json:"decay_applied"`
	WeeksElapsed     int     `json:"weeks_elapsed"`
	DryRun           bool    `json:"dry_run,omitempty"`
}

// Change is the notification sent to listeners after a rating was stored.
type Change struct {
	PlayerID       string     `json:"player_id" msgpack:"player_id"`
	PlayerName     string     `json:"player_name" msgpack:"player_name"`
	Previous       null.Float `json:"previous" msgpack:"previous"`
	Rating         float64    `json:"rating" msgpack:"rating"`
	MatchesCounted int        `json:"matches_counted" msgpack:"matches_counted"`
}

// Moved reports whether the stored value actually changed.
func (c Change) Moved() bool {
	return !c.Previous.Valid || c.Previous.Float64 != c.Rating
}

// BatchEntry pairs a player with the result or error of one recalculation
// inside a batch.
type BatchEntry struct {
	PlayerID string  `json:"player_id"`
	Result   *Result `json:"result,omitempty"`
	Err      error   `json:"-"`
	Error    string  `json:"error,omitempty"`
}
