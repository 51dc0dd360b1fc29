package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                    sync.Mutex
	recalculations        int
	recalculationFailures int
	durations             []float64
	matchEvents           int
	coalescedRequests     int
	slackNotifSent        int
	slackNotifFailed      int
	startupTime           float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		durations: make([]float64, 0),
	}
}

func (m *Mock) IncRecalculations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recalculations++
}

func (m *Mock) IncRecalculationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recalculationFailures++
}

func (m *Mock) ObserveRecalculationDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = append(m.durations, seconds)
}

func (m *Mock) IncMatchEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchEvents++
}

func (m *Mock) IncCoalescedRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coalescedRequests++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Recalculations returns the number of times IncRecalculations was called.
func (m *Mock) Recalculations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recalculations
}

// RecalculationFailures returns the number of times IncRecalculationFailures was called.
func (m *Mock) RecalculationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recalculationFailures
}

// Durations returns the observed recalculation durations.
func (m *Mock) Durations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.durations...)
}

// MatchEvents returns the number of times IncMatchEvents was called.
func (m *Mock) MatchEvents() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchEvents
}

// CoalescedRequests returns the number of times IncCoalescedRequests was called.
func (m *Mock) CoalescedRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coalescedRequests
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
