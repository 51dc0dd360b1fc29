package rating

import (
	"math"
	"time"

	"github.com/mauv0809/club-lk/internal/club"
)

const (
	// AgeClassFactor is fixed for all players.
	AgeClassFactor = 0.8
	// TeamMatchMultiplier applies to wins in inter-club team matches.
	TeamMatchMultiplier = 1.1
	// DecayPerWeek is added to the rating for every full week of the season.
	DecayPerWeek = 0.025

	diffCap = 4.0
	week    = 7 * 24 * time.Hour
)

// Points is the P(diff) term, where diff = own - opponent. Beating a better
// player (positive diff, since lower is better) is worth more.
func Points(diff float64) float64 {
	switch {
	case diff <= -diffCap:
		return 10
	case diff >= diffCap:
		return 110
	case diff < 0:
		x := (diff + diffCap) / diffCap
		return 10 + 40*x*x
	default:
		x := diff / diffCap
		return 50 + 60*x*x
	}
}

// Hurdle grows as the rating gets better, so strong players improve slower.
func Hurdle(own float64) float64 {
	return 50 + 12.5*(club.WorstRating-own)
}

// Improvement is the rating gain for a single win. A non-positive hurdle
// (own rating beyond the ceiling) yields no gain.
func Improvement(own, opp float64, teamMatch bool) float64 {
	h := Hurdle(own)
	if h <= 0 {
		return 0
	}
	imp := math.Max(0, Points(own-opp)*AgeClassFactor/h)
	if teamMatch {
		imp *= TeamMatchMultiplier
	}
	return imp
}

// WeeksSince counts full weeks from start to now. Before the season starts
// it is zero.
func WeeksSince(start, now time.Time) int {
	if start.IsZero() || !now.After(start) {
		return 0
	}
	return int(now.Sub(start) / week)
}

// Decay is the inactivity term for the given number of weeks.
func Decay(weeks int) float64 {
	return DecayPerWeek * float64(weeks)
}

// FinalRating combines the terms, caps at WorstRating and floors to one
// decimal.
func FinalRating(start, totalImprovement, decay float64) float64 {
	raw := math.Min(club.WorstRating, start-totalImprovement+decay)
	// The epsilon keeps values like 17.3 (stored as 17.2999...) from
	// dropping a tenth.
	return math.Floor(raw*10+1e-9) / 10
}

// StartingRating picks the replay's starting point: season start, then
// current, then the legacy ranking text, then WorstRating.
func StartingRating(p club.Player) float64 {
	var v float64
	switch {
	case p.SeasonStartRating.Valid:
		v = p.SeasonStartRating.Float64
	case p.CurrentRating.Valid:
		v = p.CurrentRating.Float64
	case p.FallbackRating.Valid:
		v = club.ParseLK(p.FallbackRating.String)
	default:
		v = club.WorstRating
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return club.WorstRating
	}
	return v
}
