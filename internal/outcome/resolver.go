package outcome

import (
	"strconv"
	"strings"
)

// Resolve determines the set winners and the match winner from three set
// scores. Sets one and two are regular sets, the third is a match tiebreak.
// Sets scored (0,0) were not played and are skipped, so a match can be
// decided after two played sets even if the middle one is empty.
func Resolve(sets [3]Set) Result {
	var res Result
	for i, s := range sets {
		if i == len(sets)-1 {
			res.PerSet[i] = ResolveMatchTiebreak(s)
		} else {
			res.PerSet[i] = ResolveSet(s)
		}
		switch res.PerSet[i] {
		case SetHome:
			res.HomeSets++
		case SetGuest:
			res.GuestSets++
		}
	}

	switch {
	case res.HomeSets >= setsToWin:
		res.Winner = Home
	case res.GuestSets >= setsToWin:
		res.Winner = Guest
	}
	return res
}

// ResolveSet applies the regular set rule: six games with a two game lead,
// or 7-6 after a tiebreak. 6-6 means the tiebreak is still running.
func ResolveSet(s Set) SetOutcome {
	if s.Home == 0 && s.Guest == 0 {
		return SetNotPlayed
	}
	switch {
	case s.Home >= regularSetGames && s.Home-s.Guest >= winningMargin:
		return SetHome
	case s.Guest >= regularSetGames && s.Guest-s.Home >= winningMargin:
		return SetGuest
	case s.Home == regularSetGames+1 && s.Guest == regularSetGames:
		return SetHome
	case s.Guest == regularSetGames+1 && s.Home == regularSetGames:
		return SetGuest
	}
	return SetUndetermined
}

// ResolveMatchTiebreak applies the match-tiebreak rule: first to ten points
// with a two point lead.
func ResolveMatchTiebreak(s Set) SetOutcome {
	if s.Home == 0 && s.Guest == 0 {
		return SetNotPlayed
	}
	switch {
	case s.Home >= matchTiebreakScore && s.Home-s.Guest >= winningMargin:
		return SetHome
	case s.Guest >= matchTiebreakScore && s.Guest-s.Home >= winningMargin:
		return SetGuest
	}
	return SetUndetermined
}

// ParseScore converts a raw score field into games. Anything that is not a
// non-negative integer counts as 0.
func ParseScore(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseSide converts a stored winner value. Unknown values are Undetermined.
func ParseSide(text string) Side {
	switch Side(strings.ToLower(strings.TrimSpace(text))) {
	case Home:
		return Home
	case Guest:
		return Guest
	}
	return Undetermined
}

// Valid reports whether the side names an actual winner.
func (s Side) Valid() bool {
	return s == Home || s == Guest
}

// Opposite returns the other side. Undetermined stays Undetermined.
func (s Side) Opposite() Side {
	switch s {
	case Home:
		return Guest
	case Guest:
		return Home
	}
	return Undetermined
}
