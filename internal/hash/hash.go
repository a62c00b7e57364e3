// Package hash computes the xxHash64 checksums and fingerprints used by
// point-set snapshots.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Columns computes an order-sensitive xxHash64 over two float64 columns.
//
// The digest covers the column length followed by the IEEE-754 bits of every
// x value and then every y value, little endian. Two point sets share a
// fingerprint only if they hold bit-identical values in the same order.
func Columns(xs, ys []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(xs)))
	_, _ = d.Write(buf[:])

	for _, col := range [][]float64{xs, ys} {
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
