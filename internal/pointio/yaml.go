package pointio

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/regression"
)

func readYAML(data []byte) ([]regression.Point, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
		}

		return doc.Points, nil
	}

	var points []regression.Point
	if err := node.Decode(&points); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
	}

	return points, nil
}

func writeYAML(points []regression.Point) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(points); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
