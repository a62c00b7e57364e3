// Package pointio reads and writes point files.
//
// Supported formats:
//
//   - CSV: one "x,y" pair per row. ',' ';' and tab separators are detected from
//     the first data row, '#' starts a comment, and a non-numeric first row is
//     treated as a header.
//   - JSON: [{"x": 1, "y": 2}, ...] or {"points": [...]}.
//   - YAML: the same two shapes as JSON.
//   - Snapshot: the binary format of package dataset.
package pointio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ezNNP/curvefit/dataset"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

// document is the object form of JSON and YAML point files.
type document struct {
	Points []regression.Point `json:"points" yaml:"points"`
}

// Read parses a point file and validates the result.
//
// Returns:
//   - []regression.Point: Points in file order
//   - error: ErrUnsupportedInputFormat, ErrMalformedRecord, ErrEmptyPoints,
//     ErrInvalidPoint or a snapshot error
func Read(r io.Reader, f format.InputFormat) ([]regression.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s points: %w", f, err)
	}

	var points []regression.Point
	switch f {
	case format.InputCSV:
		points, err = readCSV(data)
	case format.InputJSON:
		points, err = readJSON(data)
	case format.InputYAML:
		points, err = readYAML(data)
	case format.InputSnapshot:
		points, err = dataset.Decode(data)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedInputFormat, f)
	}
	if err != nil {
		return nil, err
	}

	if err := regression.ValidatePoints(points); err != nil {
		return nil, err
	}

	return points, nil
}

// Write serializes points. opts apply to the snapshot format only.
func Write(w io.Writer, points []regression.Point, f format.InputFormat, opts ...dataset.Option) error {
	var (
		data []byte
		err  error
	)

	switch f {
	case format.InputCSV:
		data, err = writeCSV(points)
	case format.InputJSON:
		data, err = writeJSON(points)
	case format.InputYAML:
		data, err = writeYAML(points)
	case format.InputSnapshot:
		data, err = dataset.Encode(points, opts...)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedInputFormat, f)
	}
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s points: %w", f, err)
	}

	return nil
}
