package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/pubsub"
)

// MatchResultSavedHandler receives saved match results and schedules their
// players for recalculation.
func MatchResultSavedHandler(scheduler MatchScheduler, pubsubClient MessageDecoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := readPushData(r)
		if err != nil {
			log.Error("Failed to read match result message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var match club.MatchResult
		if err := pubsubClient.ProcessMessage(rawData, &match); err != nil {
			http.Error(w, "Invalid match result payload", http.StatusBadRequest)
			return
		}
		if len(match.PlayerIDs()) == 0 {
			log.Warn("Match result without players", "matchID", match.ID)
			http.Error(w, "Match result has no players", http.StatusBadRequest)
			return
		}

		ids := scheduler.RecalculateForMatch(match)
		writeJSON(w, http.StatusAccepted, map[string]any{
			"match_id":  match.ID,
			"scheduled": ids,
		})
	}
}

// RecalculateAllPushHandler starts a pass over all active players in the
// background and acknowledges the message right away.
func RecalculateAllPushHandler(runner BatchRunner, pubsubClient MessageDecoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := readPushData(r)
		if err != nil {
			log.Error("Failed to read recalculate message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req pubsub.RecalculateAllRequest
		if len(rawData) > 0 {
			if err := pubsubClient.ProcessMessage(rawData, &req); err != nil {
				http.Error(w, "Invalid recalculate payload", http.StatusBadRequest)
				return
			}
		}
		dryRun := req.DryRun || IsDryRunFromContext(r)

		go func() {
			if _, err := runner.RecalculateActive(context.Background(), dryRun); err != nil {
				log.Error("Background recalculation failed", "error", err)
			}
		}()
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("OK"))
	}
}
