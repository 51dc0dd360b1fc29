package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRecalculations()
	IncRecalculationFailures()
	ObserveRecalculationDuration(seconds float64)
	IncMatchEvents()
	IncCoalescedRequests()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
