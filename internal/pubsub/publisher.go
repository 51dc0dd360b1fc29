package pubsub

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/rating"
)

// RatingsPublisher forwards every stored rating to the ratings-changed topic.
func RatingsPublisher(c PubSubClient) rating.Listener {
	return rating.ListenerFunc(func(change rating.Change) {
		if err := c.SendMessage(EventRatingsChanged, change); err != nil {
			log.Error("Failed to publish rating change", "playerID", change.PlayerID, "error", err)
		}
	})
}
