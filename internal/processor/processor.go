package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/rating"
)

// New creates a new Processor.
func New(engine Recalculator, store Store, notifier Notifier, metrics metrics.Metrics, opts ...Option) *Processor {
	p := &Processor{
		engine:   engine,
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		limiter:  newLimiter(DefaultDelay),
		debounce: DefaultDebounce,
		pending:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RecalculateActive recalculates every active player.
func (p *Processor) RecalculateActive(ctx context.Context, dryRun bool) ([]rating.BatchEntry, error) {
	ids, err := p.store.GetActivePlayerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active players: %w", err)
	}
	return p.RecalculateAll(ctx, ids, dryRun), nil
}

// RecalculateAll recalculates the given players one at a time. A failing
// player is recorded in its entry and the batch moves on.
func (p *Processor) RecalculateAll(ctx context.Context, playerIDs []string, dryRun bool) []rating.BatchEntry {
	log.Info("Starting rating batch...", "players", len(playerIDs), "dry_run", dryRun)
	entries := p.run(ctx, playerIDs, dryRun)

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	log.Info("Rating batch finished.", "players", len(entries), "failed", failed)

	if p.notifier != nil {
		if err := p.notifier.SendBatchSummary(entries, dryRun); err != nil {
			log.Error("Failed to send batch summary", "error", err)
		}
	}
	return entries
}

func (p *Processor) run(ctx context.Context, playerIDs []string, dryRun bool) []rating.BatchEntry {
	entries := make([]rating.BatchEntry, 0, len(playerIDs))
	for _, id := range playerIDs {
		if err := p.limiter.Wait(ctx); err != nil {
			entries = append(entries, failedEntry(id, err))
			continue
		}
		res, err := p.engine.Recalculate(ctx, id, dryRun)
		if err != nil {
			entries = append(entries, failedEntry(id, err))
			continue
		}
		entries = append(entries, rating.BatchEntry{PlayerID: id, Result: res})
	}
	return entries
}

func failedEntry(playerID string, err error) rating.BatchEntry {
	return rating.BatchEntry{PlayerID: playerID, Err: err, Error: err.Error()}
}

// RecalculateForMatch schedules the players of a saved match result. The
// players are collected for the debounce window, so several edits in quick
// succession end up as one pass per player. It returns the player ids of
// the result.
func (p *Processor) RecalculateForMatch(match club.MatchResult) []string {
	ids := match.PlayerIDs()
	p.metrics.IncMatchEvents()
	if len(ids) == 0 {
		log.Warn("Match result has no players", "matchID", match.ID)
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if _, ok := p.pending[id]; ok {
			p.metrics.IncCoalescedRequests()
			continue
		}
		p.pending[id] = struct{}{}
		p.order = append(p.order, id)
	}

	if p.timer != nil && p.timer.Stop() {
		p.passes.Done()
	}
	p.gen++
	gen := p.gen
	p.passes.Add(1)
	p.timer = time.AfterFunc(p.debounce, func() { p.fire(gen) })

	log.Info("Scheduled recalculation for match result", "matchID", match.ID, "players", ids, "pending", len(p.order))
	return ids
}

func (p *Processor) fire(gen uint64) {
	defer p.passes.Done()

	p.mu.Lock()
	if gen != p.gen {
		// A newer timer or a Flush owns the pending set.
		p.mu.Unlock()
		return
	}
	ids := p.drainLocked()
	p.mu.Unlock()

	if len(ids) == 0 {
		return
	}
	log.Info("Debounce window closed, recalculating players", "players", ids)
	p.run(context.Background(), ids, false)
}

// Flush recalculates every pending player right away instead of waiting for
// the debounce window.
func (p *Processor) Flush(ctx context.Context) []rating.BatchEntry {
	p.mu.Lock()
	if p.timer != nil && p.timer.Stop() {
		p.passes.Done()
	}
	p.gen++
	ids := p.drainLocked()
	p.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}
	log.Info("Flushing pending recalculations", "players", ids)
	return p.run(ctx, ids, false)
}

// Wait blocks until all scheduled debounce passes have finished.
func (p *Processor) Wait() {
	p.passes.Wait()
}

// Pending returns the player ids waiting for the debounce window.
func (p *Processor) Pending() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.order...)
}

func (p *Processor) drainLocked() []string {
	ids := p.order
	p.order = nil
	p.pending = make(map[string]struct{})
	p.timer = nil
	return ids
}
