package pubsub

import (
	"errors"
	"testing"

	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/outcome"
	"github.com/mauv0809/club-lk/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/guregu/null.v4"
)

func TestProcessMessage_MatchResult(t *testing.T) {
	in := club.MatchResult{
		ID:             "r1",
		MatchdayID:     "md1",
		MatchType:      club.MatchTypeSingles,
		HomePlayer1ID:  "a",
		GuestPlayer1ID: "b",
		Sets:           [3]outcome.Set{{Home: 6, Guest: 3}, {Home: 6, Guest: 4}},
	}
	data, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out club.MatchResult
	require.NoError(t, NewLogOnly().ProcessMessage(data, &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Sets, out.Sets)
	assert.Equal(t, []string{"a", "b"}, out.PlayerIDs())
}

func TestProcessMessage_Garbage(t *testing.T) {
	var out club.MatchResult
	err := NewLogOnly().ProcessMessage([]byte{0xc1}, &out)
	assert.Error(t, err)
}

func TestLogOnly_SendMessage(t *testing.T) {
	c := NewLogOnly()
	assert.NoError(t, c.SendMessage(EventRecalculateAll, RecalculateAllRequest{DryRun: true}))
	assert.NotPanics(t, c.Close)
}

func TestRatingsPublisher(t *testing.T) {
	mock := NewMock()
	listener := RatingsPublisher(mock)

	change := rating.Change{PlayerID: "p1", Previous: null.FloatFrom(18), Rating: 17.3}
	listener.RatingsChanged(change)

	require.Len(t, mock.SendMessageCalls, 1)
	assert.Equal(t, EventRatingsChanged, mock.SendMessageCalls[0].Topic)
	assert.Equal(t, change, mock.SendMessageCalls[0].Data)

	mock.SendMessageFunc = func(topic EventType, data any) error { return errors.New("unavailable") }
	assert.NotPanics(t, func() { listener.RatingsChanged(change) })
	assert.Len(t, mock.SendMessageCalls, 2)
}
