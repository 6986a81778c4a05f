package buffer

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrOutOfBounds is returned when a slice request falls outside the
	// parent buffer.
	ErrOutOfBounds = errors.New("buffer: out of bounds")
	// ErrNegativeLength is returned when a negative size is requested.
	ErrNegativeLength = errors.New("buffer: negative length")
)

// Owner is shared backing memory a Buffer may alias.
//
// Implementations count holders; the backing memory is released when the
// last holder calls Release. The mmap package's region type is the main
// implementation.
type Owner interface {
	Retain()
	Release()

	// Refs returns the current holder count without taking a
	// reference. Callers use it to ask "is anyone else holding this"
	// before invalidating the backing memory.
	Refs() int64
}

// Buffer is an immutable view over a contiguous byte range.
//
// A Buffer either owns its bytes outright (heap-allocated, owner == nil)
// or aliases an Owner-managed region. In the latter case the view stays
// valid until the buffer is released, regardless of what happens to the
// object that produced it.
type Buffer struct {
	data     []byte
	owner    Owner
	released atomic.Bool
}

// New wraps data in a Buffer without external ownership.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewOwned wraps data in a Buffer that aliases owner-managed memory.
// A reference on owner is taken; Release drops it.
func NewOwned(data []byte, owner Owner) *Buffer {
	if owner != nil {
		owner.Retain()
	}
	return &Buffer{data: data, owner: owner}
}

// Bytes returns the underlying bytes. Callers must not modify the
// returned slice and must not use it after Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the length of the view in bytes.
func (b *Buffer) Len() int64 {
	return int64(len(b.data))
}

// Cap returns the capacity of the backing allocation visible to this
// view. For buffers frozen from a MutableBuffer it is the aligned
// capacity; for zero-copy views it equals Len.
func (b *Buffer) Cap() int64 {
	return int64(cap(b.data))
}

// Slice returns a new Buffer over data[offset : offset+length] sharing
// ownership of the same backing region. No bytes are copied.
func (b *Buffer) Slice(offset, length int64) (*Buffer, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	if offset < 0 || offset+length > b.Len() {
		return nil, ErrOutOfBounds
	}
	return NewOwned(b.data[offset:offset+length:offset+length], b.owner), nil
}

// Release drops this buffer's reference on the backing region.
// It is idempotent; the data must not be accessed afterwards.
func (b *Buffer) Release() {
	if b.released.Swap(true) {
		return
	}
	if b.owner != nil {
		b.owner.Release()
	}
	b.data = nil
}
