package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(4)
	n, err := bb.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	tail := bb.Extend(3)
	require.Len(t, tail, 3)
	copy(tail, "cde")
	require.Equal(t, "abcde", string(bb.Bytes()))
	require.Equal(t, 5, bb.Len())

	bb.Grow(10000)
	require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 10000)
	require.Equal(t, "abcde", string(bb.Bytes()))

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	again := p.Get()
	require.Zero(t, again.Len(), "pooled buffers come back empty")

	large := NewByteBuffer(128)
	p.Put(large)
	p.Put(nil)

	shared := GetBuffer()
	require.Zero(t, shared.Len())
	PutBuffer(shared)
}

func TestGetFloat64Slice(t *testing.T) {
	s, release := GetFloat64Slice(10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = float64(i)
	}
	release()

	s, release = GetFloat64Slice(3)
	require.Len(t, s, 3)
	release()

	s, release = GetFloat64Slice(0)
	require.Empty(t, s)
	release()
}
