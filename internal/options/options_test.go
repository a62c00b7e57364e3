package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type settings struct {
	Places   int
	Mode     string
	Verbose  bool
	LastCall string
}

var errNegativePlaces = errors.New("places cannot be negative")

func (s *settings) setPlaces(v int) error {
	if v < 0 {
		return errNegativePlaces
	}
	s.Places = v
	s.LastCall = "setPlaces"

	return nil
}

func withPlaces(v int) Option[*settings] {
	return New(func(s *settings) error {
		return s.setPlaces(v)
	})
}

func withMode(mode string) Option[*settings] {
	return NoError(func(s *settings) {
		s.Mode = mode
		s.LastCall = "withMode"
	})
}

func withVerbose() Option[*settings] {
	return NoError(func(s *settings) {
		s.Verbose = true
		s.LastCall = "withVerbose"
	})
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		s := &settings{}
		require.NoError(t, withPlaces(5).apply(s))
		require.Equal(t, 5, s.Places)
		require.Equal(t, "setPlaces", s.LastCall)
	})

	t.Run("propagates error", func(t *testing.T) {
		s := &settings{}
		err := withPlaces(-1).apply(s)
		require.ErrorIs(t, err, errNegativePlaces)
		require.Equal(t, 0, s.Places)
	})
}

func TestNoError(t *testing.T) {
	s := &settings{}
	require.NoError(t, withMode("ceiling").apply(s))
	require.Equal(t, "ceiling", s.Mode)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		s := &settings{}
		err := Apply(s, withPlaces(3), withMode("floor"), withVerbose())
		require.NoError(t, err)
		require.Equal(t, 3, s.Places)
		require.Equal(t, "floor", s.Mode)
		require.True(t, s.Verbose)
		require.Equal(t, "withVerbose", s.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := &settings{}
		err := Apply(s, withPlaces(2), withPlaces(-4), withMode("never"))
		require.ErrorIs(t, err, errNegativePlaces)
		require.Equal(t, 2, s.Places)
		require.Empty(t, s.Mode)
	})

	t.Run("empty and nil options", func(t *testing.T) {
		s := &settings{}
		require.NoError(t, Apply(s))
		require.NoError(t, Apply(s, nil, withVerbose()))
		require.True(t, s.Verbose)
	})

	t.Run("primitive target", func(t *testing.T) {
		var n int
		require.NoError(t, Apply(&n, NoError(func(p *int) { *p = 42 })))
		require.Equal(t, 42, n)
	})
}
