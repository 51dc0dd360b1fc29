package club

import (
	"context"
	"sync"
)

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use. Without a spy, reads answer from the Players
// and Results maps.
type MockStore struct {
	mu sync.Mutex

	Players map[string]*Player
	Results []MatchResult

	// Spies for method calls
	GetPlayerFunc                func(ctx context.Context, playerID string) (*Player, error)
	GetPlayerRatingFunc          func(ctx context.Context, playerID string) (float64, error)
	SetPlayerRatingFunc          func(ctx context.Context, playerID string, rating float64) error
	GetActivePlayerIDsFunc       func(ctx context.Context) ([]string, error)
	UpsertPlayerFunc             func(ctx context.Context, player Player) error
	UpsertMatchdayFunc           func(ctx context.Context, matchday Matchday) error
	UpsertMatchResultFunc        func(ctx context.Context, result *MatchResult) error
	GetMatchResultFunc           func(ctx context.Context, resultID string) (*MatchResult, error)
	GetMatchResultsForPlayerFunc func(ctx context.Context, playerID string) ([]MatchResult, error)

	// Call records
	GetPlayerCalls                []string
	GetPlayerRatingCalls          []string
	GetMatchResultsForPlayerCalls []string
	SetPlayerRatingCalls          []struct {
		PlayerID string
		Rating   float64
	}
	UpsertMatchResultCalls []*MatchResult
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{Players: make(map[string]*Player)}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = nil
	m.GetPlayerRatingCalls = nil
	m.GetMatchResultsForPlayerCalls = nil
	m.SetPlayerRatingCalls = nil
	m.UpsertMatchResultCalls = nil
}

// AddPlayer registers a player for the default read behaviour.
func (m *MockStore) AddPlayer(p Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	player := p
	m.Players[p.ID] = &player
}

// RatingOf returns the stored rating the mock currently holds for a player.
func (m *MockStore) RatingOf(playerID string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Players[playerID]
	if !ok || !p.CurrentRating.Valid {
		return 0, false
	}
	return p.CurrentRating.Float64, true
}

func (m *MockStore) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	m.mu.Lock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, playerID)
	fn := m.GetPlayerFunc
	p, ok := m.Players[playerID]
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, playerID)
	}
	if !ok {
		return nil, ErrPlayerNotFound
	}
	player := *p
	return &player, nil
}

func (m *MockStore) GetPlayerRating(ctx context.Context, playerID string) (float64, error) {
	m.mu.Lock()
	m.GetPlayerRatingCalls = append(m.GetPlayerRatingCalls, playerID)
	fn := m.GetPlayerRatingFunc
	p, ok := m.Players[playerID]
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, playerID)
	}
	if !ok {
		return WorstRating, ErrPlayerNotFound
	}
	return p.StoredRating(), nil
}

func (m *MockStore) SetPlayerRating(ctx context.Context, playerID string, rating float64) error {
	m.mu.Lock()
	m.SetPlayerRatingCalls = append(m.SetPlayerRatingCalls, struct {
		PlayerID string
		Rating   float64
	}{playerID, rating})
	fn := m.SetPlayerRatingFunc
	m.mu.Unlock()
	if fn != nil {
		if err := fn(ctx, playerID, rating); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.Players[playerID]; ok {
		p.CurrentRating.Float64 = rating
		p.CurrentRating.Valid = true
	}
	return nil
}

func (m *MockStore) GetActivePlayerIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	fn := m.GetActivePlayerIDsFunc
	var ids []string
	for id, p := range m.Players {
		if p.Active {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return ids, nil
}

func (m *MockStore) UpsertPlayer(ctx context.Context, player Player) error {
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(ctx, player)
	}
	m.AddPlayer(player)
	return nil
}

func (m *MockStore) UpsertMatchday(ctx context.Context, matchday Matchday) error {
	if m.UpsertMatchdayFunc != nil {
		return m.UpsertMatchdayFunc(ctx, matchday)
	}
	return nil
}

func (m *MockStore) UpsertMatchResult(ctx context.Context, result *MatchResult) error {
	m.mu.Lock()
	m.UpsertMatchResultCalls = append(m.UpsertMatchResultCalls, result)
	fn := m.UpsertMatchResultFunc
	if fn == nil {
		m.Results = append(m.Results, *result)
	}
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, result)
	}
	return nil
}

func (m *MockStore) GetMatchResult(ctx context.Context, resultID string) (*MatchResult, error) {
	if m.GetMatchResultFunc != nil {
		return m.GetMatchResultFunc(ctx, resultID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Results {
		if r.ID == resultID {
			result := r
			return &result, nil
		}
	}
	return nil, ErrMatchResultNotFound
}

func (m *MockStore) GetMatchResultsForPlayer(ctx context.Context, playerID string) ([]MatchResult, error) {
	m.mu.Lock()
	m.GetMatchResultsForPlayerCalls = append(m.GetMatchResultsForPlayerCalls, playerID)
	fn := m.GetMatchResultsForPlayerFunc
	var results []MatchResult
	for _, r := range m.Results {
		if r.SideOf(playerID).Valid() {
			results = append(results, r)
		}
	}
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, playerID)
	}
	return results, nil
}
