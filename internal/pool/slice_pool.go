// Package pool recycles the scratch buffers used while encoding and decoding
// point-set snapshots.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a slice of length size and a function that returns
// it to the pool. The contents are not zeroed.
//
// Example:
//
//	xs, release := pool.GetFloat64Slice(len(points))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { float64SlicePool.Put(ptr) }
}
