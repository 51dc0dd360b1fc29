package http

import (
	"net/http"

	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/http/handlers"
	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/pubsub"
)

// Processor is what the server needs from the batch orchestrator.
type Processor interface {
	handlers.BatchRunner
	handlers.MatchScheduler
}

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Engine         handlers.PlayerRecalculator
	Processor      Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
