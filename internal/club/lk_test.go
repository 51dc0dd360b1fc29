package club

import (
	"testing"

	"github.com/mauv0809/club-lk/internal/outcome"
	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v4"
)

func TestParseLK(t *testing.T) {
	cases := map[string]float64{
		"LK 12.3": 12.3,
		"LK12,3":  12.3,
		"lk 8":    8,
		"14.5":    14.5,
		" LK 20 ": 20,
		"":        WorstRating,
		"LK":      WorstRating,
		"LK abc":  WorstRating,
		"LK 0":    WorstRating,
		"-3":      WorstRating,
	}
	for text, want := range cases {
		assert.InDelta(t, want, ParseLK(text), 1e-9, "ParseLK(%q)", text)
	}
}

func TestStoredRating(t *testing.T) {
	assert.Equal(t, 11.0, Player{CurrentRating: null.FloatFrom(11), SeasonStartRating: null.FloatFrom(12)}.StoredRating())
	assert.Equal(t, 12.0, Player{SeasonStartRating: null.FloatFrom(12), FallbackRating: null.StringFrom("LK 13")}.StoredRating())
	assert.Equal(t, 13.0, Player{FallbackRating: null.StringFrom("LK 13")}.StoredRating())
	assert.Equal(t, WorstRating, Player{FallbackRating: null.StringFrom("n/a")}.StoredRating())
	assert.Equal(t, WorstRating, Player{}.StoredRating())
}

func TestMatchResultSlots(t *testing.T) {
	doubles := MatchResult{
		MatchType:      MatchTypeDoubles,
		HomePlayer1ID:  "h1",
		HomePlayer2ID:  "h2",
		GuestPlayer1ID: "g1",
		GuestPlayer2ID: "g2",
	}
	assert.Equal(t, []string{"h1", "h2", "g1", "g2"}, doubles.PlayerIDs())
	assert.Equal(t, outcome.Guest, doubles.SideOf("g2"))
	assert.Equal(t, outcome.Undetermined, doubles.SideOf("x"))
	assert.Equal(t, "h1", doubles.PartnerOf("h2"))
	assert.Equal(t, []string{"h1", "h2"}, doubles.OpponentsOf("g1"))

	singles := MatchResult{MatchType: MatchTypeSingles, HomePlayer1ID: "h1", GuestPlayer1ID: "g1"}
	assert.Equal(t, []string{"h1", "g1"}, singles.PlayerIDs())
	assert.Equal(t, "", singles.PartnerOf("h1"))
	assert.Equal(t, []string{"g1"}, singles.OpponentsOf("h1"))
	assert.Nil(t, singles.OpponentsOf("x"))

	duplicated := MatchResult{HomePlayer1ID: "h1", HomePlayer2ID: "h1", GuestPlayer1ID: "g1"}
	assert.Equal(t, []string{"h1", "g1"}, duplicated.PlayerIDs())
}

func TestMatchResultOutcome(t *testing.T) {
	m := MatchResult{Sets: [3]outcome.Set{{Home: 6, Guest: 2}, {Home: 6, Guest: 1}, {Home: 0, Guest: 0}}}
	assert.Equal(t, outcome.Home, m.Outcome().Winner)

	m.Winner = outcome.Guest
	assert.Equal(t, outcome.Guest, m.Outcome().Winner, "a stored winner is trusted")
}
