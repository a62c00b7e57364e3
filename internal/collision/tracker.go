// Package collision detects point sets that are given to one command more than once.
package collision

import (
	"fmt"

	"github.com/ezNNP/curvefit/dataset"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/regression"
)

// Tracker maps point-set fingerprints to the first source that produced them.
type Tracker struct {
	sources     map[uint64]string // fingerprint → first source
	sourcesList []string          // unique sources in tracking order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sources:     make(map[uint64]string),
		sourcesList: make([]string, 0),
	}
}

// Track records source under fingerprint.
//
// Returns the source that first used fingerprint and true when it was already
// tracked; the new source is not recorded in that case. An empty source name
// returns ErrInvalidSource.
func (t *Tracker) Track(source string, fingerprint uint64) (string, bool, error) {
	if source == "" {
		return "", false, errs.ErrInvalidSource
	}

	if first, exists := t.sources[fingerprint]; exists {
		return first, true, nil
	}

	t.sources[fingerprint] = source
	t.sourcesList = append(t.sourcesList, source)

	return "", false, nil
}

// TrackPoints fingerprints points and tracks them under source.
func (t *Tracker) TrackPoints(source string, points []regression.Point) (string, bool, error) {
	if len(points) == 0 {
		return "", false, fmt.Errorf("%s: %w", source, errs.ErrEmptyPoints)
	}

	return t.Track(source, dataset.Fingerprint(points))
}

// Sources returns the unique sources in the order they were tracked.
func (t *Tracker) Sources() []string {
	return t.sourcesList
}

// Count returns the number of unique point sets.
func (t *Tracker) Count() int {
	return len(t.sourcesList)
}

// Reset clears all tracked sources.
func (t *Tracker) Reset() {
	clear(t.sources)
	t.sourcesList = t.sourcesList[:0]
}
