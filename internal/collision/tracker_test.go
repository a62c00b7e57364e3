package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/regression"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Sources())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	first, dup, err := tracker.Track("a.csv", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, dup)
	require.Empty(t, first)

	_, dup, err = tracker.Track("b.csv", 0xfedcba0987654321)
	require.NoError(t, err)
	require.False(t, dup)
	require.Equal(t, []string{"a.csv", "b.csv"}, tracker.Sources())

	first, dup, err = tracker.Track("c.json", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, dup)
	require.Equal(t, "a.csv", first)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_EmptySource(t *testing.T) {
	tracker := NewTracker()

	_, _, err := tracker.Track("", 1)
	require.ErrorIs(t, err, errs.ErrInvalidSource)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_TrackPoints(t *testing.T) {
	tracker := NewTracker()
	points := []regression.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	_, dup, err := tracker.TrackPoints("a.csv", points)
	require.NoError(t, err)
	require.False(t, dup)

	first, dup, err := tracker.TrackPoints("copy.yaml", []regression.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)
	require.True(t, dup)
	require.Equal(t, "a.csv", first)

	_, dup, err = tracker.TrackPoints("reversed.csv", []regression.Point{{X: 3, Y: 4}, {X: 1, Y: 2}})
	require.NoError(t, err)
	require.False(t, dup)

	_, _, err = tracker.TrackPoints("empty.csv", nil)
	require.ErrorIs(t, err, errs.ErrEmptyPoints)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	_, _, err := tracker.Track("a.csv", 1)
	require.NoError(t, err)

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())

	_, dup, err := tracker.Track("b.csv", 1)
	require.NoError(t, err)
	require.False(t, dup)
}
