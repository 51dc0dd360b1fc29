package club

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/club-lk/internal/outcome"
	"gopkg.in/guregu/null.v4"
)

// WorstRating is the ceiling of the LK scale and the default for unrated players.
const WorstRating = 25.0

// ErrPlayerNotFound is returned when a player record does not exist.
var ErrPlayerNotFound = errors.New("player not found")

// ErrMatchResultNotFound is returned when a match result does not exist.
var ErrMatchResultNotFound = errors.New("match result not found")

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a club member with an LK rating. Lower ratings are better.
type Player struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	SeasonStartRating null.Float  `json:"season_start_rating"`
	CurrentRating     null.Float  `json:"current_rating"`
	FallbackRating    null.String `json:"fallback_rating"` // legacy ranking text, e.g. "LK 14.2"
	Active            bool        `json:"active"`
}

// MatchType is either singles or doubles.
type MatchType string

const (
	MatchTypeSingles MatchType = "SINGLES"
	MatchTypeDoubles MatchType = "DOUBLES"
)

// Matchday groups the match results of one fixture between two teams.
type Matchday struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Season      string    `json:"season"`
	HomeTeamID  string    `json:"home_team_id"`
	AwayTeamID  string    `json:"away_team_id"`
	IsTeamMatch bool      `json:"is_team_match"`
}

// MatchResult is a single singles or doubles rubber of a matchday.
type MatchResult struct {
	ID             string         `json:"id" msgpack:"id"`
	MatchdayID     string         `json:"matchday_id" msgpack:"matchday_id"`
	MatchType      MatchType      `json:"match_type" msgpack:"match_type"`
	HomePlayer1ID  string         `json:"home_player1_id" msgpack:"home_player1_id"`
	HomePlayer2ID  string         `json:"home_player2_id,omitempty" msgpack:"home_player2_id"`
	GuestPlayer1ID string         `json:"guest_player1_id" msgpack:"guest_player1_id"`
	GuestPlayer2ID string         `json:"guest_player2_id,omitempty" msgpack:"guest_player2_id"`
	Sets           [3]outcome.Set `json:"sets" msgpack:"sets"`
	Winner         outcome.Side   `json:"winner,omitempty" msgpack:"winner"`
	IsTeamMatch    bool           `json:"is_team_match" msgpack:"is_team_match"`
	PlayedAt       time.Time      `json:"played_at" msgpack:"played_at"`
}
