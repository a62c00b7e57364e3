package pointio

import (
	"bytes"
	"fmt"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/internal/jsonx"
	"github.com/ezNNP/curvefit/regression"
)

func readJSON(data []byte) ([]regression.Point, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var doc document
		if err := jsonx.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
		}

		return doc.Points, nil
	}

	var points []regression.Point
	if err := jsonx.Unmarshal(trimmed, &points); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
	}

	return points, nil
}

func writeJSON(points []regression.Point) ([]byte, error) {
	data, err := jsonx.MarshalIndent(points, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
