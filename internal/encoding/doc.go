// Package encoding implements the column layouts of point-set snapshots.
//
// A snapshot stores the x values and then the y values of a point set as two
// float64 columns. Each column is written with a ColumnCodec:
//
//   - Raw: 8 bytes per value in the snapshot's byte order
//   - Gorilla: XOR compression of consecutive values, see
//     https://www.vldb.org/pvldb/vol8/p1816-teller.pdf
//
// Gorilla works well for sample grids, where consecutive x values share sign,
// exponent and most mantissa bits, and for smooth y values.
package encoding
