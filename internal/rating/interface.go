package rating

import (
	"context"

	"github.com/mauv0809/club-lk/internal/club"
)

// Repository defines the data access the engine needs.
type Repository interface {
	GetPlayer(ctx context.Context, playerID string) (*club.Player, error)
	GetMatchResultsForPlayer(ctx context.Context, playerID string) ([]club.MatchResult, error)
	GetPlayerRating(ctx context.Context, playerID string) (float64, error)
	SetPlayerRating(ctx context.Context, playerID string, rating float64) error
}

// Listener is told about every persisted rating. Implementations must not
// block for long; errors are theirs to log.
type Listener interface {
	RatingsChanged(change Change)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(change Change)

func (f ListenerFunc) RatingsChanged(change Change) {
	f(change)
}
