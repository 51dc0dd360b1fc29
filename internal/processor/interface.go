package processor

import (
	"context"

	"github.com/mauv0809/club-lk/internal/notifier"
	"github.com/mauv0809/club-lk/internal/rating"
)

// Recalculator is the rating engine as seen by the processor.
type Recalculator interface {
	Recalculate(ctx context.Context, playerID string, dryRun bool) (*rating.Result, error)
}

// Store defines the database operations required by the processor.
type Store interface {
	GetActivePlayerIDs(ctx context.Context) ([]string, error)
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
