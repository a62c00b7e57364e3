package encoding

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/internal/pool"
)

// Gorilla stores a column with XOR compression:
//
//  1. The first value is written as is (64 bits).
//  2. Every following value is XORed with its predecessor.
//     - XOR of 0 (repeated value): control bit 0.
//     - Otherwise control bit 1, then either
//     a. 0 and the meaningful bits in the previous leading/trailing window, or
//     b. 1, 5 bits of leading zeros, 6 bits of window length - 1, and the
//     meaningful bits.
//
// The column is padded to a whole byte. Bits are written most significant first,
// so the layout does not depend on the snapshot's byte order.
type Gorilla struct{}

var _ ColumnCodec = Gorilla{}

// maxLeading is the largest leading zero count the 5-bit field can hold.
const maxLeading = 31

// Append appends values to bb as one compressed column.
func (Gorilla) Append(bb *pool.ByteBuffer, values []float64) {
	if len(values) == 0 {
		return
	}

	w := bitWriter{bb: bb}
	prev := math.Float64bits(values[0])
	w.writeBits(prev, 64)

	prevLeading, prevTrailing, prevBlock := 0, 0, 0
	for _, v := range values[1:] {
		cur := math.Float64bits(v)
		xor := cur ^ prev
		prev = cur

		if xor == 0 {
			w.writeBits(0, 1)
			continue
		}
		w.writeBits(1, 1)

		leading := min(bits.LeadingZeros64(xor), maxLeading)
		trailing := bits.TrailingZeros64(xor)

		if prevBlock > 0 && leading >= prevLeading && trailing >= prevTrailing {
			w.writeBits(0, 1)
			w.writeBits(xor>>prevTrailing, prevBlock)

			continue
		}

		block := 64 - leading - trailing
		w.writeBits(1, 1)
		w.writeBits(uint64(leading), 5) //nolint:gosec // 0-31
		w.writeBits(uint64(block-1), 6) //nolint:gosec // 0-63
		w.writeBits(xor>>trailing, block)

		prevLeading, prevTrailing, prevBlock = leading, trailing, block
	}

	w.flush()
}

// Decode reads count values from the start of data.
func (Gorilla) Decode(data []byte, count int) ([]float64, int, error) {
	if err := checkCount(count); err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []float64{}, 0, nil
	}

	// The first value takes 64 bits and every later value at least one.
	if len(data) < 8 || count-1 > 8*len(data)-64 {
		return nil, 0, fmt.Errorf("%w: gorilla column of %d values cannot fit in %d bytes",
			errs.ErrInvalidPayload, count, len(data))
	}

	r := bitReader{data: data}
	values := make([]float64, count)

	prev, ok := r.readBits(64)
	if !ok {
		return nil, 0, truncated(0)
	}
	values[0] = math.Float64frombits(prev)

	trailing, block := 0, 0
	for i := 1; i < count; i++ {
		changed, ok := r.readBits(1)
		if !ok {
			return nil, 0, truncated(i)
		}
		if changed == 0 {
			values[i] = values[i-1]
			continue
		}

		newWindow, ok := r.readBits(1)
		if !ok {
			return nil, 0, truncated(i)
		}
		if newWindow == 1 {
			leading, ok1 := r.readBits(5)
			size, ok2 := r.readBits(6)
			if !ok1 || !ok2 {
				return nil, 0, truncated(i)
			}
			block = int(size) + 1
			trailing = 64 - int(leading) - block
			if trailing < 0 {
				return nil, 0, fmt.Errorf("%w: gorilla window out of range at value %d", errs.ErrInvalidPayload, i)
			}
		} else if block == 0 {
			return nil, 0, fmt.Errorf("%w: gorilla window reused before definition at value %d", errs.ErrInvalidPayload, i)
		}

		meaningful, ok := r.readBits(block)
		if !ok {
			return nil, 0, truncated(i)
		}
		prev ^= meaningful << trailing
		values[i] = math.Float64frombits(prev)
	}

	return values, r.pos, nil
}

func truncated(index int) error {
	return fmt.Errorf("%w: gorilla column truncated at value %d", errs.ErrInvalidPayload, index)
}

// bitWriter accumulates bits in a 64-bit word and appends full words to bb.
type bitWriter struct {
	bb    *pool.ByteBuffer
	word  uint64
	count int
}

// writeBits writes the low n bits of value, 1 <= n <= 64.
func (w *bitWriter) writeBits(value uint64, n int) {
	if n < 64 {
		value &= 1<<n - 1
	}

	free := 64 - w.count
	if n < free {
		w.word = w.word<<n | value
		w.count += n

		return
	}

	spill := n - free
	full := w.word<<free | value>>spill
	binary.BigEndian.PutUint64(w.bb.Extend(8), full)

	w.word = value & (1<<spill - 1)
	w.count = spill
}

// flush writes the pending bits, left-aligned and padded with zeros.
func (w *bitWriter) flush() {
	if w.count == 0 {
		return
	}

	aligned := w.word << (64 - w.count)
	n := (w.count + 7) / 8
	out := w.bb.Extend(n)
	for i := range n {
		out[i] = byte(aligned >> (56 - 8*i))
	}

	w.word, w.count = 0, 0
}

// bitReader reads bits most significant first.
type bitReader struct {
	data []byte
	pos  int
	cur  uint64
	left int
}

// readBits reads n bits, 0 <= n <= 64.
func (r *bitReader) readBits(n int) (uint64, bool) {
	var out uint64
	for n > 0 {
		if r.left == 0 {
			if r.pos >= len(r.data) {
				return 0, false
			}
			r.cur = uint64(r.data[r.pos])
			r.pos++
			r.left = 8
		}

		take := min(n, r.left)
		chunk := (r.cur >> (r.left - take)) & (1<<take - 1)
		out = out<<take | chunk
		r.left -= take
		n -= take
	}

	return out, true
}
