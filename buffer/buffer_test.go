package buffer

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingOwner struct {
	refs atomic.Int64
}

func (o *countingOwner) Retain()     { o.refs.Add(1) }
func (o *countingOwner) Release()    { o.refs.Add(-1) }
func (o *countingOwner) Refs() int64 { return o.refs.Load() }

func TestBufferLen(t *testing.T) {
	b := New([]byte("hello"))
	assert.Equal(t, int64(5), b.Len())
	assert.Equal(t, []byte("hello"), b.Bytes())
}

func TestBufferSlice(t *testing.T) {
	b := New([]byte("hello world"))

	s, err := b.Slice(6, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), s.Bytes())
}

func TestBufferSliceOutOfBounds(t *testing.T) {
	b := New([]byte("hello"))

	_, err := b.Slice(3, 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.Slice(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.Slice(0, -1)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestBufferOwnership(t *testing.T) {
	owner := &countingOwner{}
	owner.refs.Store(1)

	b := NewOwned([]byte("data"), owner)
	assert.Equal(t, int64(2), owner.refs.Load())

	s, err := b.Slice(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), owner.refs.Load())

	s.Release()
	assert.Equal(t, int64(2), owner.refs.Load())

	b.Release()
	assert.Equal(t, int64(1), owner.refs.Load())
}

func TestBufferReleaseIdempotent(t *testing.T) {
	owner := &countingOwner{}
	owner.refs.Store(1)

	b := NewOwned([]byte("data"), owner)
	b.Release()
	b.Release()
	assert.Equal(t, int64(1), owner.refs.Load())
}

func TestMutableBufferResize(t *testing.T) {
	m, err := NewResizable(10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), m.Len())
	assert.GreaterOrEqual(t, m.Cap(), int64(10))

	copy(m.Bytes(), "0123456789")

	// Growing keeps the prefix.
	require.NoError(t, m.Resize(200))
	assert.Equal(t, int64(200), m.Len())
	assert.Equal(t, []byte("0123456789"), m.Bytes()[:10])

	// Shrinking keeps capacity.
	capBefore := m.Cap()
	require.NoError(t, m.Resize(5))
	assert.Equal(t, int64(5), m.Len())
	assert.Equal(t, capBefore, m.Cap())
}

func TestMutableBufferResizeNegative(t *testing.T) {
	m, err := NewResizable(10)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Resize(-1), ErrNegativeLength)
}

func TestMutableBufferZeroPadding(t *testing.T) {
	m, err := NewResizable(8)
	require.NoError(t, err)
	copy(m.Bytes(), "abcdefgh")

	require.NoError(t, m.Resize(4))
	m.ZeroPadding()

	full := m.Bytes()[:m.Cap()]
	for i := int64(4); i < m.Cap(); i++ {
		assert.Equal(t, byte(0), full[i])
	}
}

func TestMutableBufferFreeze(t *testing.T) {
	m, err := NewResizable(4)
	require.NoError(t, err)
	copy(m.Bytes(), "abcd")

	b := m.Freeze()
	assert.Equal(t, []byte("abcd"), b.Bytes())
	assert.Equal(t, int64(4), b.Len())
	assert.Equal(t, m.Cap(), b.Cap())
}
