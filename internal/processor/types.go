package processor

import (
	"sync"
	"time"

	"github.com/mauv0809/club-lk/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	DefaultDelay    = 200 * time.Millisecond
	DefaultDebounce = 2 * time.Second
)

// Processor sequences rating recalculations for batches and for saved match
// results.
type Processor struct {
	engine   Recalculator
	store    Store
	notifier Notifier
	metrics  metrics.Metrics
	limiter  *rate.Limiter
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
	order   []string
	timer   *time.Timer
	gen     uint64
	passes  sync.WaitGroup
}

// Option configures a Processor.
type Option func(*Processor)

// WithDelay sets the minimum gap between two recalculations. Zero disables
// the rate limit.
func WithDelay(d time.Duration) Option {
	return func(p *Processor) {
		p.limiter = newLimiter(d)
	}
}

// WithDebounce sets how long saved match results are collected before the
// affected players are recalculated.
func WithDebounce(d time.Duration) Option {
	return func(p *Processor) {
		p.debounce = d
	}
}

func newLimiter(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(d), 1)
}
