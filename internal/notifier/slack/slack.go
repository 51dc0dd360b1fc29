package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/notifier"
	"github.com/mauv0809/club-lk/internal/rating"
	"github.com/slack-go/slack"
)

// maxListedFailures caps the player ids listed in a batch summary.
const maxListedFailures = 10

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendRatingChange(change rating.Change, dryRun bool) (string, error) {
	_, ts, err := s.sendMessage(s.formatRatingChange(change), dryRun)
	return ts, err
}

func (s *Notifier) SendBatchSummary(entries []rating.BatchEntry, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatBatchSummary(entries), dryRun)
	return err
}

func (s *Notifier) formatRatingChange(change rating.Change) slack.Message {
	name := change.PlayerName
	if name == "" {
		name = change.PlayerID
	}

	var text string
	if change.Previous.Valid {
		arrow := "📈"
		if change.Rating > change.Previous.Float64 {
			arrow = "📉"
		}
		text = fmt.Sprintf("%s *%s*: %s → %s", arrow, name, formatLK(change.Previous.Float64), formatLK(change.Rating))
	} else {
		text = fmt.Sprintf("🎾 *%s* is now rated %s", name, formatLK(change.Rating))
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
		slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", fmt.Sprintf("%d win(s) counted this season", change.MatchesCounted), false, false)),
	}
	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatBatchSummary(entries []rating.BatchEntry) slack.Message {
	var failed []string
	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e.PlayerID)
		}
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "LK recalculation finished", false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn",
			fmt.Sprintf("*%d* players recalculated, *%d* failed", len(entries)-len(failed), len(failed)), false, false), nil, nil),
	}
	if len(failed) > 0 {
		listed := failed
		if len(listed) > maxListedFailures {
			listed = listed[:maxListedFailures]
		}
		text := "Failed: " + strings.Join(listed, ", ")
		if len(failed) > len(listed) {
			text += fmt.Sprintf(" and %d more", len(failed)-len(listed))
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", text, false, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

func formatLK(v float64) string {
	return fmt.Sprintf("LK %.1f", v)
}
