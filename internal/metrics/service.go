package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Recalculations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_recalculations_total",
			Help: "The total number of player rating recalculations that completed.",
		}),
		RecalculationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_recalculation_failures_total",
			Help: "The total number of player rating recalculations that failed.",
		}),
		RecalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lk_recalculation_duration_seconds",
			Help:    "The duration of a single player rating recalculation.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		MatchEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_match_result_events_total",
			Help: "The total number of saved match results received.",
		}),
		CoalescedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_coalesced_requests_total",
			Help: "Player recalculation requests merged into an already pending pass.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lk_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lk_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Recalculations,
		s.RecalculationFailures,
		s.RecalculationDuration,
		s.MatchEvents,
		s.CoalescedRequests,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRecalculations() {
	s.Recalculations.Inc()
}

func (s *Service) IncRecalculationFailures() {
	s.RecalculationFailures.Inc()
}

func (s *Service) ObserveRecalculationDuration(seconds float64) {
	s.RecalculationDuration.Observe(seconds)
}

func (s *Service) IncMatchEvents() {
	s.MatchEvents.Inc()
}

func (s *Service) IncCoalescedRequests() {
	s.CoalescedRequests.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
