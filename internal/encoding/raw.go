package encoding

import (
	"fmt"
	"math"

	"github.com/ezNNP/curvefit/endian"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/internal/pool"
)

// Raw stores each value as its 8 IEEE-754 bytes.
type Raw struct {
	engine endian.EndianEngine
}

var _ ColumnCodec = Raw{}

// NewRaw creates a raw codec with the given byte order.
func NewRaw(engine endian.EndianEngine) Raw {
	return Raw{engine: engine}
}

// Append appends values in the codec's byte order.
func (r Raw) Append(bb *pool.ByteBuffer, values []float64) {
	bb.Grow(8 * len(values))
	for _, v := range values {
		bb.B = r.engine.AppendUint64(bb.B, math.Float64bits(v))
	}
}

// Decode reads count values. data must hold at least 8*count bytes.
func (r Raw) Decode(data []byte, count int) ([]float64, int, error) {
	if err := checkCount(count); err != nil {
		return nil, 0, err
	}

	size := 8 * count
	if len(data) < size {
		return nil, 0, fmt.Errorf("%w: raw column needs %d bytes, got %d", errs.ErrInvalidPayload, size, len(data))
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(r.engine.Uint64(data[i*8:]))
	}

	return values, size, nil
}
