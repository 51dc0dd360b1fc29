package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Recalculations        prometheus.Counter
	RecalculationFailures prometheus.Counter
	RecalculationDuration prometheus.Histogram
	MatchEvents           prometheus.Counter
	CoalescedRequests     prometheus.Counter
	SlackNotifSent        prometheus.Counter
	SlackNotifFailed      prometheus.Counter
	StartupTimeSeconds    prometheus.Gauge
}
