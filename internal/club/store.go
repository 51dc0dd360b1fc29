package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/club-lk/internal/outcome"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

const playerColumns = "id, name, season_start_rating, current_rating, fallback_rating, active"

var matchResultColumns = []string{
	"mr.id", "mr.matchday_id", "mr.match_type",
	"mr.home_player1_id", "COALESCE(mr.home_player2_id, '')",
	"mr.guest_player1_id", "COALESCE(mr.guest_player2_id, '')",
	"mr.set1_home", "mr.set1_guest", "mr.set2_home", "mr.set2_guest", "mr.set3_home", "mr.set3_guest",
	"COALESCE(mr.winner, '')", "md.is_team_match", "md.date",
}

func (s *store) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	row := s.db.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM players WHERE id = ?", playerID)
	err := row.Scan(&p.ID, &p.Name, &p.SeasonStartRating, &p.CurrentRating, &p.FallbackRating, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}
	return &p, nil
}

// GetPlayerRating is the lighter read used for partners and opponents.
func (s *store) GetPlayerRating(ctx context.Context, playerID string) (float64, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return WorstRating, err
	}
	return p.StoredRating(), nil
}

// SetPlayerRating overwrites the current rating in a single statement.
func (s *store) SetPlayerRating(ctx context.Context, playerID string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE players SET current_rating = ?, rating_updated_at = ? WHERE id = ?",
		rating, time.Now().Unix(), playerID)
	if err != nil {
		return fmt.Errorf("failed to update rating for %s: %w", playerID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update rating for %s: %w", playerID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	log.Debug("Stored player rating", "playerID", playerID, "rating", rating)
	return nil
}

func (s *store) GetActivePlayerIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM players WHERE active = 1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpsertPlayer inserts a player or updates its profile fields. The current
// rating is only written on insert; afterwards it belongs to the rating engine.
func (s *store) UpsertPlayer(ctx context.Context, player Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, name, season_start_rating, current_rating, fallback_rating, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			season_start_rating = excluded.season_start_rating,
			fallback_rating = excluded.fallback_rating,
			active = excluded.active;
	`, player.ID, player.Name, player.SeasonStartRating, player.CurrentRating, player.FallbackRating, player.Active)
	return err
}

func (s *store) UpsertMatchday(ctx context.Context, matchday Matchday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if matchday.ID == "" {
		return errors.New("matchday id is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matchdays (id, date, season, home_team_id, away_team_id, is_team_match)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			season = excluded.season,
			home_team_id = excluded.home_team_id,
			away_team_id = excluded.away_team_id,
			is_team_match = excluded.is_team_match;
	`, matchday.ID, matchday.Date.Unix(), matchday.Season, matchday.HomeTeamID, matchday.AwayTeamID, matchday.IsTeamMatch)
	return err
}

// UpsertMatchResult stores a result, assigning a new id when it has none.
func (s *store) UpsertMatchResult(ctx context.Context, result *MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.MatchType == "" {
		result.MatchType = MatchTypeSingles
	}
	var winner sql.NullString
	if result.Winner.Valid() {
		winner = sql.NullString{String: string(result.Winner), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_results (id, matchday_id, match_type, home_player1_id, home_player2_id, guest_player1_id, guest_player2_id,
			set1_home, set1_guest, set2_home, set2_guest, set3_home, set3_guest, winner, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			matchday_id = excluded.matchday_id,
			match_type = excluded.match_type,
			home_player1_id = excluded.home_player1_id,
			home_player2_id = excluded.home_player2_id,
			guest_player1_id = excluded.guest_player1_id,
			guest_player2_id = excluded.guest_player2_id,
			set1_home = excluded.set1_home,
			set1_guest = excluded.set1_guest,
			set2_home = excluded.set2_home,
			set2_guest = excluded.set2_guest,
			set3_home = excluded.set3_home,
			set3_guest = excluded.set3_guest,
			winner = excluded.winner,
			updated_at = excluded.updated_at;
	`, result.ID, result.MatchdayID, result.MatchType,
		result.HomePlayer1ID, nullIfEmpty(result.HomePlayer2ID), result.GuestPlayer1ID, nullIfEmpty(result.GuestPlayer2ID),
		result.Sets[0].Home, result.Sets[0].Guest, result.Sets[1].Home, result.Sets[1].Guest, result.Sets[2].Home, result.Sets[2].Guest,
		winner, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert match result %s: %w", result.ID, err)
	}
	return nil
}

func (s *store) GetMatchResult(ctx context.Context, resultID string) (*MatchResult, error) {
	query, args, err := sq.Select(matchResultColumns...).
		From("match_results mr").
		Join("matchdays md ON md.id = mr.matchday_id").
		Where(sq.Eq{"mr.id": resultID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := scanMatchResult(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMatchResultNotFound, resultID)
	}
	return result, err
}

// GetMatchResultsForPlayer returns every result in which the player occupies
// any of the four slots, oldest matchday first.
func (s *store) GetMatchResultsForPlayer(ctx context.Context, playerID string) ([]MatchResult, error) {
	query, args, err := sq.Select(matchResultColumns...).
		From("match_results mr").
		Join("matchdays md ON md.id = mr.matchday_id").
		Where(sq.Or{
			sq.Eq{"mr.home_player1_id": playerID},
			sq.Eq{"mr.home_player2_id": playerID},
			sq.Eq{"mr.guest_player1_id": playerID},
			sq.Eq{"mr.guest_player2_id": playerID},
		}).
		OrderBy("md.date ASC", "mr.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results for %s: %w", playerID, err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanMatchResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match result for %s: %w", playerID, err)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("Loaded match history", "playerID", playerID, "count", len(results))
	return results, nil
}

// scanMatchResult is a helper function to scan a single match result row.
func scanMatchResult(scanner interface{ Scan(...any) error }) (*MatchResult, error) {
	var m MatchResult
	var winner string
	var playedAt int64
	err := scanner.Scan(
		&m.ID, &m.MatchdayID, &m.MatchType,
		&m.HomePlayer1ID, &m.HomePlayer2ID, &m.GuestPlayer1ID, &m.GuestPlayer2ID,
		&m.Sets[0].Home, &m.Sets[0].Guest, &m.Sets[1].Home, &m.Sets[1].Guest, &m.Sets[2].Home, &m.Sets[2].Guest,
		&winner, &m.IsTeamMatch, &playedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Winner = outcome.ParseSide(winner)
	m.PlayedAt = time.Unix(playedAt, 0).UTC()
	return &m, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
