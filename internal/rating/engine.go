package rating

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/metrics"
)

// New creates a new Engine.
func New(repo Repository, metrics metrics.Metrics, opts ...Option) *Engine {
	e := &Engine{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
		locks:   newPlayerLocks(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers a listener for persisted rating changes.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// SeasonStart returns the configured season start.
func (e *Engine) SeasonStart() time.Time {
	return e.seasonStart
}

// Recalculate replays the full match history of a player and stores the
// resulting rating. Every call starts from scratch; nothing carries over from
// earlier runs. Calls for the same player are serialized.
//
// Only wins move the rating. Losses and undetermined matches count for
// nothing, so a player's rating can only get worse through decay.
func (e *Engine) Recalculate(ctx context.Context, playerID string, dryRun bool) (*Result, error) {
	unlock := e.locks.lock(playerID)
	defer unlock()

	startTime := time.Now()
	res, change, err := e.recalculate(ctx, playerID, dryRun)
	e.metrics.ObserveRecalculationDuration(time.Since(startTime).Seconds())
	if err != nil {
		e.metrics.IncRecalculationFailures()
		log.Error("Rating recalculation failed", "playerID", playerID, "error", err)
		return nil, err
	}
	e.metrics.IncRecalculations()

	if dryRun {
		log.Info("[Dry Run] Would store rating", "playerID", playerID, "rating", res.NewRating)
		return res, nil
	}
	e.notify(change)
	return res, nil
}

func (e *Engine) recalculate(ctx context.Context, playerID string, dryRun bool) (*Result, Change, error) {
	player, err := e.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, Change{}, fmt.Errorf("%w %s: %w", ErrPlayerLoad, playerID, err)
	}
	history, err := e.repo.GetMatchResultsForPlayer(ctx, playerID)
	if err != nil {
		return nil, Change{}, fmt.Errorf("%w %s: %w", ErrPlayerLoad, playerID, err)
	}

	start := StartingRating(*player)
	ratings := ratingSnapshot{repo: e.repo, cache: make(map[string]float64)}

	var total float64
	counted := 0
	for _, m := range history {
		side := m.SideOf(playerID)
		if !side.Valid() || m.Outcome().Winner != side {
			continue
		}

		own := start
		if m.MatchType == club.MatchTypeDoubles {
			own = (start + ratings.of(ctx, m.PartnerOf(playerID))) / 2
		}
		var opp float64
		opponents := m.OpponentsOf(playerID)
		for _, id := range opponents {
			opp += ratings.of(ctx, id)
		}
		opp /= float64(len(opponents))

		imp := Improvement(own, opp, m.IsTeamMatch)
		log.Debug("Counted win", "playerID", playerID, "matchID", m.ID, "own", own, "opp", opp, "improvement", imp)
		total += imp
		counted++
	}

	weeks := WeeksSince(e.seasonStart, e.now())
	decay := Decay(weeks)
	final := FinalRating(start, total, decay)

	res := &Result{
		PlayerID:         playerID,
		StartRating:      start,
		NewRating:        final,
		MatchesCounted:   counted,
		TotalImprovement: total,
		DecayApplied:     decay,
		WeeksElapsed:     weeks,
		DryRun:           dryRun,
	}
	change := Change{
		PlayerID:       playerID,
		PlayerName:     player.Name,
		Previous:       player.CurrentRating,
		Rating:         final,
		MatchesCounted: counted,
	}
	if dryRun {
		return res, change, nil
	}

	if err := e.repo.SetPlayerRating(ctx, playerID, final); err != nil {
		return nil, Change{}, fmt.Errorf("%w %s: %w", ErrPersist, playerID, err)
	}
	log.Info("Recalculated rating", "playerID", playerID, "start", start, "rating", final,
		"wins", counted, "improvement", total, "decay", decay)
	return res, change, nil
}

func (e *Engine) notify(change Change) {
	e.mu.RLock()
	listeners := append([]Listener(nil), e.listeners...)
	e.mu.RUnlock()
	for _, l := range listeners {
		l.RatingsChanged(change)
	}
}

// ratingSnapshot reads partner and opponent ratings once per pass. Anything
// that cannot be loaded counts as WorstRating.
type ratingSnapshot struct {
	repo  Repository
	cache map[string]float64
}

func (s ratingSnapshot) of(ctx context.Context, playerID string) float64 {
	if playerID == "" {
		return club.WorstRating
	}
	if r, ok := s.cache[playerID]; ok {
		return r
	}
	r, err := s.repo.GetPlayerRating(ctx, playerID)
	if err != nil || r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		if err != nil {
			log.Warn("Could not load rating, using worst class", "playerID", playerID, "error", err)
		}
		r = club.WorstRating
	}
	s.cache[playerID] = r
	return r
}
