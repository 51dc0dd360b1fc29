package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

type logOnlyClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventMatchResultSaved carries a club.MatchResult whose players need a recalculation.
	EventMatchResultSaved EventType = "match-result-saved"
	// EventRecalculateAll asks for a pass over every active player.
	EventRecalculateAll EventType = "recalculate-all"
	// EventRatingsChanged carries a rating.Change after a rating was stored.
	EventRatingsChanged EventType = "ratings-changed"
)

// RecalculateAllRequest is the payload of EventRecalculateAll.
type RecalculateAllRequest struct {
	DryRun bool `msgpack:"dry_run" json:"dry_run"`
}
