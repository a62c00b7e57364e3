package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/internal/collision"
	"github.com/ezNNP/curvefit/internal/pointio"
	"github.com/ezNNP/curvefit/regression"
)

// stdioPath names standard input or output in place of a file path.
const stdioPath = "-"

// source is one loaded point file.
type source struct {
	path   string
	points []regression.Point
}

// inputFormatFor returns the --format override or the format implied by path.
// Standard input defaults to CSV.
func (a *app) inputFormatFor(path string) (format.InputFormat, error) {
	if a.inputFormat != "" {
		return format.ParseInputFormat(a.inputFormat)
	}
	if path == stdioPath {
		return format.InputCSV, nil
	}

	return format.DetectInputFormat(path)
}

// readPoints loads and validates the points of path.
func (a *app) readPoints(cmd *cobra.Command, path string) ([]regression.Point, error) {
	f, err := a.inputFormatFor(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == stdioPath {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	points, err := pointio.Read(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("loaded points", "source", path, "format", f, "count", len(points))

	return points, nil
}

// readSources loads every path and drops point sets already seen under
// another path.
func (a *app) readSources(cmd *cobra.Command, paths []string) ([]source, error) {
	tracker := collision.NewTracker()
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		points, err := a.readPoints(cmd, path)
		if err != nil {
			return nil, err
		}

		first, dup, err := tracker.TrackPoints(path, points)
		if err != nil {
			return nil, err
		}
		if dup {
			a.logger.Warn("skipping duplicate point set", "source", path, "same_as", first)
			continue
		}
		sources = append(sources, source{path: path, points: points})
	}

	return sources, nil
}
