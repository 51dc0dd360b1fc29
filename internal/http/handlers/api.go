package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/outcome"
	"github.com/mauv0809/club-lk/internal/rating"
	"gopkg.in/guregu/null.v4"
)

// PlayerRatingResponse is returned by the rating endpoint.
type PlayerRatingResponse struct {
	PlayerID          string     `json:"player_id"`
	Name              string     `json:"name"`
	Rating            float64    `json:"rating"`
	CurrentRating     null.Float `json:"current_rating"`
	SeasonStartRating null.Float `json:"season_start_rating"`
}

// MatchResultResponse pairs a stored result with its resolved outcome.
type MatchResultResponse struct {
	Result  *club.MatchResult `json:"result"`
	Outcome outcome.Result    `json:"outcome"`
}

// RecalculateResponse is returned by the synchronous batch endpoint.
type RecalculateResponse struct {
	Players int                 `json:"players"`
	Failed  int                 `json:"failed"`
	DryRun  bool                `json:"dry_run"`
	Entries []rating.BatchEntry `json:"entries"`
}

// RecalculateHandler recalculates every active player and reports each
// outcome.
func RecalculateHandler(runner BatchRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dryRun := IsDryRunFromContext(r)
		entries, err := runner.RecalculateActive(r.Context(), dryRun)
		if err != nil {
			log.Error("Failed to recalculate active players", "error", err)
			writeError(w, err)
			return
		}
		failed := 0
		for _, e := range entries {
			if e.Err != nil {
				failed++
			}
		}
		writeJSON(w, http.StatusOK, RecalculateResponse{
			Players: len(entries),
			Failed:  failed,
			DryRun:  dryRun,
			Entries: entries,
		})
	}
}

func PlayerRecalculateHandler(engine PlayerRecalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		res, err := engine.Recalculate(r.Context(), playerID, IsDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func PlayerRatingHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := store.GetPlayer(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PlayerRatingResponse{
			PlayerID:          player.ID,
			Name:              player.Name,
			Rating:            player.StoredRating(),
			CurrentRating:     player.CurrentRating,
			SeasonStartRating: player.SeasonStartRating,
		})
	}
}

func MatchResultHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := store.GetMatchResult(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MatchResultResponse{Result: result, Outcome: result.Outcome()})
	}
}
