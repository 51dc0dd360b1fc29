package club

import "context"

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	GetPlayer(ctx context.Context, playerID string) (*Player, error)
	GetPlayerRating(ctx context.Context, playerID string) (float64, error)
	SetPlayerRating(ctx context.Context, playerID string, rating float64) error
	GetActivePlayerIDs(ctx context.Context) ([]string, error)
	UpsertPlayer(ctx context.Context, player Player) error
	UpsertMatchday(ctx context.Context, matchday Matchday) error
	UpsertMatchResult(ctx context.Context, result *MatchResult) error
	GetMatchResult(ctx context.Context, resultID string) (*MatchResult, error)
	GetMatchResultsForPlayer(ctx context.Context, playerID string) ([]MatchResult, error)
}
