package outcome

// Set holds the score of a single set. For the first two sets the values are
// games, for the third set they are match-tiebreak points.
type Set struct {
	Home  int `json:"home" msgpack:"home"`
	Guest int `json:"guest" msgpack:"guest"`
}

// Side identifies one side of a match.
type Side string

const (
	// Undetermined means no winner can be derived (yet).
	Undetermined Side = ""
	Home         Side = "home"
	Guest        Side = "guest"
)

// SetOutcome is the resolved state of a single set.
type SetOutcome string

const (
	SetNotPlayed    SetOutcome = "NOT_PLAYED"
	SetUndetermined SetOutcome = "UNDETERMINED"
	SetHome         SetOutcome = "HOME"
	SetGuest        SetOutcome = "GUEST"
)

// Result is the outcome of a whole match.
type Result struct {
	Winner    Side          `json:"winner"`
	PerSet    [3]SetOutcome `json:"per_set"`
	HomeSets  int           `json:"home_sets"`
	GuestSets int           `json:"guest_sets"`
}

const (
	regularSetGames    = 6
	matchTiebreakScore = 10
	winningMargin      = 2
	setsToWin          = 2
)
