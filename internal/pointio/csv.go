package pointio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/regression"
)

func readCSV(data []byte) ([]regression.Point, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectSeparator(data)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var points []regression.Point
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
		}
		line, _ := r.FieldPos(0)

		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", errs.ErrMalformedRecord, line, len(record))
		}

		p, err := parsePoint(record)
		if err != nil {
			if len(points) == 0 && isHeader(record) {
				continue
			}

			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrMalformedRecord, line, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func parsePoint(record []string) (regression.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return regression.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return regression.Point{}, err
	}

	return regression.Point{X: x, Y: y}, nil
}

// isHeader reports whether neither field of record is numeric.
func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return true
}

// detectSeparator inspects the first data line; ';' wins over ',' and ',' over tab.
func detectSeparator(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.Contains(line, ";"):
			return ';'
		case strings.Contains(line, ","):
			return ','
		case strings.Contains(line, "\t"):
			return '\t'
		default:
			return ','
		}
	}

	return ','
}

func writeCSV(points []regression.Point) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"x", "y"}); err != nil {
		return nil, err
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}
