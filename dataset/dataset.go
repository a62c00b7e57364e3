package dataset

import (
	"fmt"
	"math"

	"github.com/ezNNP/curvefit/compress"
	"github.com/ezNNP/curvefit/endian"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/internal/encoding"
	"github.com/ezNNP/curvefit/internal/hash"
	"github.com/ezNNP/curvefit/internal/options"
	"github.com/ezNNP/curvefit/internal/pool"
	"github.com/ezNNP/curvefit/regression"
)

// Encode serializes points into a snapshot.
//
// Parameters:
//   - points: Non-empty point set with finite coordinates
//   - opts: Compression, column encoding and byte order
//
// Returns:
//   - []byte: Snapshot bytes owned by the caller
//   - error: ErrEmptyPoints, ErrInvalidPoint, or an option error
//
// Example:
//
//	data, err := dataset.Encode(points, dataset.WithCompression(format.CompressionZstd))
func Encode(points []regression.Point, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := regression.ValidatePoints(points); err != nil {
		return nil, err
	}
	if uint64(len(points)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d points exceed the snapshot limit", errs.ErrInvalidPayload, len(points))
	}

	engine := endian.ForBigEndian(cfg.BigEndian)
	column, err := encoding.CodecFor(cfg.Encoding, engine)
	if err != nil {
		return nil, err
	}

	xs, releaseX := pool.GetFloat64Slice(len(points))
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(len(points))
	defer releaseY()
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	raw := pool.GetBuffer()
	defer pool.PutBuffer(raw)
	column.Append(raw, xs)
	column.Append(raw, ys)

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s compression: %w", cfg.Compression, err)
	}

	h := Header{
		Version:     Version,
		Compression: cfg.Compression,
		Encoding:    cfg.Encoding,
		Count:       uint32(len(points)),
		PayloadSize: uint32(len(payload)),
		RawSize:     uint32(raw.Len()),
		Checksum:    hash.Sum(raw.Bytes()),
	}
	if cfg.BigEndian {
		h.Flags |= flagBigEndian
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// Decode parses a snapshot back into points.
//
// The header, payload size and checksum are verified before any column is
// decoded.
//
// Returns:
//   - []regression.Point: Decoded points in their original order
//   - error: Header errors from ParseHeader, ErrInvalidPayload or ErrChecksumMismatch
func Decode(data []byte) ([]regression.Point, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Count == 0 {
		return nil, fmt.Errorf("%w: snapshot holds no points", errs.ErrInvalidPayload)
	}
	if int64(h.PayloadSize) != int64(len(data)-HeaderSize) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, found %d",
			errs.ErrInvalidPayload, h.PayloadSize, len(data)-HeaderSize)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if int64(len(raw)) != int64(h.RawSize) {
		return nil, fmt.Errorf("%w: header declares %d raw bytes, found %d", errs.ErrInvalidPayload, h.RawSize, len(raw))
	}
	if sum := hash.Sum(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	column, err := encoding.CodecFor(h.Encoding, h.Engine())
	if err != nil {
		return nil, err
	}

	count := int(h.Count)
	xs, n, err := column.Decode(raw, count)
	if err != nil {
		return nil, fmt.Errorf("x column: %w", err)
	}
	ys, m, err := column.Decode(raw[n:], count)
	if err != nil {
		return nil, fmt.Errorf("y column: %w", err)
	}
	if n+m != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, len(raw)-n-m)
	}

	return regression.PointsFromXY(xs, ys)
}

// Fingerprint returns an order-sensitive xxHash64 of the point coordinates.
// It does not depend on compression, encoding or byte order.
func Fingerprint(points []regression.Point) uint64 {
	xs, releaseX := pool.GetFloat64Slice(len(points))
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(len(points))
	defer releaseY()
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	return hash.Columns(xs, ys)
}
