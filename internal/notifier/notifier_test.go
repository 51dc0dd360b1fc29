package notifier

import (
	"errors"
	"testing"

	"github.com/mauv0809/club-lk/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

func TestListener(t *testing.T) {
	t.Run("announces moved ratings", func(t *testing.T) {
		mock := NewMock()
		Listener(mock).RatingsChanged(rating.Change{PlayerID: "p1", Previous: null.FloatFrom(18), Rating: 17.3})
		require.Len(t, mock.SendRatingChangeCalls, 1)
		assert.Equal(t, 17.3, mock.SendRatingChangeCalls[0].Change.Rating)
		assert.False(t, mock.SendRatingChangeCalls[0].DryRun)
	})

	t.Run("first rating counts as moved", func(t *testing.T) {
		mock := NewMock()
		Listener(mock).RatingsChanged(rating.Change{PlayerID: "p1", Rating: 25})
		assert.Equal(t, 1, mock.RatingChangeCount())
	})

	t.Run("skips unchanged ratings", func(t *testing.T) {
		mock := NewMock()
		Listener(mock).RatingsChanged(rating.Change{PlayerID: "p1", Previous: null.FloatFrom(18), Rating: 18})
		assert.Equal(t, 0, mock.RatingChangeCount())
	})

	t.Run("send errors are swallowed", func(t *testing.T) {
		mock := NewMock()
		mock.SendRatingChangeFunc = func(change rating.Change, dryRun bool) (string, error) {
			return "", errors.New("slack down")
		}
		assert.NotPanics(t, func() {
			Listener(mock).RatingsChanged(rating.Change{PlayerID: "p1", Rating: 20})
		})
	})
}
