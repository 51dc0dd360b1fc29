package slack

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/rating"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	calls                  int
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.calls++
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

// blockTexts flattens the text objects of section, header and context blocks.
func blockTexts(msg slackapi.Message) string {
	var sb strings.Builder
	for _, b := range msg.Blocks.BlockSet {
		switch block := b.(type) {
		case *slackapi.SectionBlock:
			sb.WriteString(block.Text.Text)
		case *slackapi.HeaderBlock:
			sb.WriteString(block.Text.Text)
		case *slackapi.ContextBlock:
			for _, el := range block.ContextElements.Elements {
				if txt, ok := el.(*slackapi.TextBlockObject); ok {
					sb.WriteString(txt.Text)
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, ts, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.Equal(t, "ts123", ts)
	assert.Equal(t, 1, api.calls, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendRatingChange(t *testing.T) {
	api := &mockSlackAPI{}
	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	ts, err := notifier.SendRatingChange(rating.Change{PlayerID: "p1", PlayerName: "Anna", Previous: null.FloatFrom(18), Rating: 17.3, MatchesCounted: 1}, false)
	require.NoError(t, err)
	assert.Equal(t, "123456789.12345", ts)
	assert.Equal(t, 1, metrics.SlackNotifSent())
}

func TestFormatRatingChange(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	t.Run("improvement", func(t *testing.T) {
		text := blockTexts(notifier.formatRatingChange(rating.Change{PlayerID: "p1", PlayerName: "Anna", Previous: null.FloatFrom(18), Rating: 17.3, MatchesCounted: 1}))
		assert.Contains(t, text, "📈 *Anna*: LK 18.0 → LK 17.3")
		assert.Contains(t, text, "1 win(s) counted")
	})

	t.Run("decay", func(t *testing.T) {
		text := blockTexts(notifier.formatRatingChange(rating.Change{PlayerID: "p1", PlayerName: "Anna", Previous: null.FloatFrom(18), Rating: 18.1}))
		assert.Contains(t, text, "📉 *Anna*: LK 18.0 → LK 18.1")
	})

	t.Run("first rating falls back to id", func(t *testing.T) {
		text := blockTexts(notifier.formatRatingChange(rating.Change{PlayerID: "p1", Rating: 25}))
		assert.Contains(t, text, "*p1* is now rated LK 25.0")
	})
}

func TestFormatBatchSummary(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	t.Run("all succeeded", func(t *testing.T) {
		entries := []rating.BatchEntry{{PlayerID: "a"}, {PlayerID: "b"}}
		msg := notifier.formatBatchSummary(entries)
		assert.Len(t, msg.Blocks.BlockSet, 2)
		assert.Contains(t, blockTexts(msg), "*2* players recalculated, *0* failed")
	})

	t.Run("lists failures", func(t *testing.T) {
		entries := []rating.BatchEntry{{PlayerID: "a"}, {PlayerID: "b", Err: errors.New("boom")}}
		text := blockTexts(notifier.formatBatchSummary(entries))
		assert.Contains(t, text, "*1* players recalculated, *1* failed")
		assert.Contains(t, text, "Failed: b")
	})

	t.Run("caps listed failures", func(t *testing.T) {
		var entries []rating.BatchEntry
		for i := 0; i < maxListedFailures+3; i++ {
			entries = append(entries, rating.BatchEntry{PlayerID: string(rune('a' + i)), Err: errors.New("boom")})
		}
		text := blockTexts(notifier.formatBatchSummary(entries))
		assert.Contains(t, text, "and 3 more")
	})
}
