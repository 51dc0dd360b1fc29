package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/rating"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// BatchRunner runs recalculations over all active players.
type BatchRunner interface {
	RecalculateActive(ctx context.Context, dryRun bool) ([]rating.BatchEntry, error)
}

// MatchScheduler schedules the players of a saved match result.
type MatchScheduler interface {
	RecalculateForMatch(match club.MatchResult) []string
}

// PlayerRecalculator recalculates a single player.
type PlayerRecalculator interface {
	Recalculate(ctx context.Context, playerID string, dryRun bool) (*rating.Result, error)
}

// MessageDecoder decodes pubsub payloads.
type MessageDecoder interface {
	ProcessMessage(data []byte, returnValue any) error
}

type pushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes,omitempty"`
		MessageID  string            `json:"messageId,omitempty"`
	} `json:"message"`
}

// readPushData unwraps a Pub/Sub push request and returns the raw payload.
func readPushData(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	log.Debug("Received pubsub push", "body", string(bodyBytes))

	var envelope pushEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	return rawData, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, club.ErrPlayerNotFound), errors.Is(err, club.ErrMatchResultNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
