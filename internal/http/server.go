package http

import (
	"net/http"

	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/http/handlers"
	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, engine handlers.PlayerRecalculator, processor Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Engine:         engine,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/match-result-saved", Chain(handlers.MatchResultSavedHandler(s.Processor, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /pubsub/recalculate-all", Chain(handlers.RecalculateAllPushHandler(s.Processor, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /recalculate", Chain(handlers.RecalculateHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /players/{id}/recalculate", Chain(handlers.PlayerRecalculateHandler(s.Engine), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/rating", Chain(handlers.PlayerRatingHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /match-results/{id}", Chain(handlers.MatchResultHandler(s.Store), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
