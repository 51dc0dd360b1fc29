package notifier

import (
	"sync"

	"github.com/mauv0809/club-lk/internal/rating"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendRatingChangeFunc func(change rating.Change, dryRun bool) (string, error)
	SendBatchSummaryFunc func(entries []rating.BatchEntry, dryRun bool) error

	// Call records
	SendRatingChangeCalls []struct {
		Change rating.Change
		DryRun bool
	}
	SendBatchSummaryCalls []struct {
		Entries []rating.BatchEntry
		DryRun  bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRatingChangeCalls = nil
	m.SendBatchSummaryCalls = nil
}

func (m *Mock) SendRatingChange(change rating.Change, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRatingChangeCalls = append(m.SendRatingChangeCalls, struct {
		Change rating.Change
		DryRun bool
	}{change, dryRun})
	if m.SendRatingChangeFunc != nil {
		return m.SendRatingChangeFunc(change, dryRun)
	}
	return "mock-ts", nil
}

func (m *Mock) SendBatchSummary(entries []rating.BatchEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBatchSummaryCalls = append(m.SendBatchSummaryCalls, struct {
		Entries []rating.BatchEntry
		DryRun  bool
	}{entries, dryRun})
	if m.SendBatchSummaryFunc != nil {
		return m.SendBatchSummaryFunc(entries, dryRun)
	}
	return nil
}

// RatingChangeCount returns the number of rating change notifications sent.
func (m *Mock) RatingChangeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendRatingChangeCalls)
}

// BatchSummaryCount returns the number of batch summaries sent.
func (m *Mock) BatchSummaryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendBatchSummaryCalls)
}
