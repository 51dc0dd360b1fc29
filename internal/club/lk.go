package club

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mauv0809/club-lk/internal/outcome"
)

var lkPattern = regexp.MustCompile(`^(?i:lk)?\s*([0-9]+(?:[.,][0-9]+)?)$`)

// ParseLK reads a rating from its textual form ("LK 12.3", "LK12,3" or just
// "12.3"). Text that does not hold a positive number yields WorstRating.
func ParseLK(text string) float64 {
	m := lkPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return WorstRating
	}
	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil || v <= 0 {
		return WorstRating
	}
	return v
}

// StoredRating is the rating other players see for this player right now:
// current, then season start, then the legacy ranking, then WorstRating.
func (p Player) StoredRating() float64 {
	switch {
	case p.CurrentRating.Valid:
		return p.CurrentRating.Float64
	case p.SeasonStartRating.Valid:
		return p.SeasonStartRating.Float64
	case p.FallbackRating.Valid:
		return ParseLK(p.FallbackRating.String)
	}
	return WorstRating
}

// PlayerIDs returns the distinct, non-empty player ids of the result, home
// side first.
func (m MatchResult) PlayerIDs() []string {
	seen := make(map[string]bool, 4)
	var ids []string
	for _, id := range []string{m.HomePlayer1ID, m.HomePlayer2ID, m.GuestPlayer1ID, m.GuestPlayer2ID} {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// SideOf reports on which side the player appears.
func (m MatchResult) SideOf(playerID string) outcome.Side {
	switch playerID {
	case "":
		return outcome.Undetermined
	case m.HomePlayer1ID, m.HomePlayer2ID:
		return outcome.Home
	case m.GuestPlayer1ID, m.GuestPlayer2ID:
		return outcome.Guest
	}
	return outcome.Undetermined
}

// PartnerOf returns the doubles partner of the player, or "" for singles.
func (m MatchResult) PartnerOf(playerID string) string {
	if m.MatchType != MatchTypeDoubles {
		return ""
	}
	switch playerID {
	case m.HomePlayer1ID:
		return m.HomePlayer2ID
	case m.HomePlayer2ID:
		return m.HomePlayer1ID
	case m.GuestPlayer1ID:
		return m.GuestPlayer2ID
	case m.GuestPlayer2ID:
		return m.GuestPlayer1ID
	}
	return ""
}

// OpponentsOf returns the opponent slot ids of the player. Singles results
// only ever report the first slot of the other side.
func (m MatchResult) OpponentsOf(playerID string) []string {
	var first, second string
	switch m.SideOf(playerID) {
	case outcome.Home:
		first, second = m.GuestPlayer1ID, m.GuestPlayer2ID
	case outcome.Guest:
		first, second = m.HomePlayer1ID, m.HomePlayer2ID
	default:
		return nil
	}
	if m.MatchType == MatchTypeDoubles {
		return []string{first, second}
	}
	return []string{first}
}

// Outcome resolves the result. A stored winner is trusted as is.
func (m MatchResult) Outcome() outcome.Result {
	res := outcome.Resolve(m.Sets)
	if m.Winner.Valid() {
		res.Winner = m.Winner
	}
	return res
}
