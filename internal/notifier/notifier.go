package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/rating"
)

// Notifier defines a high-level interface for announcing rating updates.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a player's rating was stored
	SendRatingChange(change rating.Change, dryRun bool) (string, error)
	// After a batch over many players
	SendBatchSummary(entries []rating.BatchEntry, dryRun bool) error
}

// Listener adapts a Notifier to the rating engine. Unchanged ratings are not
// announced.
func Listener(n Notifier) rating.Listener {
	return rating.ListenerFunc(func(change rating.Change) {
		if !change.Moved() {
			log.Debug("Rating unchanged, not notifying", "playerID", change.PlayerID, "rating", change.Rating)
			return
		}
		if _, err := n.SendRatingChange(change, false); err != nil {
			log.Error("Failed to announce rating change", "playerID", change.PlayerID, "error", err)
		}
	})
}

// LogNotifier only logs. It is used when no Slack channel is configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) SendRatingChange(change rating.Change, dryRun bool) (string, error) {
	log.Info("Rating changed", "playerID", change.PlayerID, "player", change.PlayerName, "previous", change.Previous, "rating", change.Rating, "dry_run", dryRun)
	return "", nil
}

func (LogNotifier) SendBatchSummary(entries []rating.BatchEntry, dryRun bool) error {
	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	log.Info("Rating batch summary", "players", len(entries), "failed", failed, "dry_run", dryRun)
	return nil
}
