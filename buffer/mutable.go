package buffer

// Alignment is the capacity alignment of mutable buffers, matching the
// widest vector registers downstream kernels use.
const Alignment = 64

// MutableBuffer is a writable, resizable byte allocation.
//
// Capacity is always a multiple of Alignment. Shrinking keeps the
// allocation; growing reallocates and copies. The slack between Len and
// Cap can be zeroed with ZeroPadding.
type MutableBuffer struct {
	data   []byte // full-capacity backing slice
	length int64
}

func alignUp(n int64) int64 {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// NewResizable allocates a MutableBuffer of the given length.
// The allocation is zero-filled.
func NewResizable(length int64) (*MutableBuffer, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	return &MutableBuffer{
		data:   make([]byte, alignUp(length)),
		length: length,
	}, nil
}

// Bytes returns the writable view of the logical contents.
func (m *MutableBuffer) Bytes() []byte {
	return m.data[:m.length]
}

// Len returns the logical length in bytes.
func (m *MutableBuffer) Len() int64 {
	return m.length
}

// Cap returns the allocated capacity in bytes.
func (m *MutableBuffer) Cap() int64 {
	return int64(len(m.data))
}

// Resize changes the logical length. Shrinking keeps the existing
// allocation; growing past capacity reallocates and copies.
func (m *MutableBuffer) Resize(length int64) error {
	if length < 0 {
		return ErrNegativeLength
	}
	if length > int64(len(m.data)) {
		grown := make([]byte, alignUp(length))
		copy(grown, m.data[:m.length])
		m.data = grown
	}
	m.length = length
	return nil
}

// ZeroPadding zeroes the capacity slack beyond the logical length, so
// readers that touch the full aligned capacity never see stale bytes.
func (m *MutableBuffer) ZeroPadding() {
	tail := m.data[m.length:]
	for i := range tail {
		tail[i] = 0
	}
}

// Freeze returns an immutable Buffer over the current contents. The
// aligned capacity is carried over so readers that touch the full
// capacity can verify the zeroed slack. The MutableBuffer must not be
// written to or resized afterwards.
func (m *MutableBuffer) Freeze() *Buffer {
	return New(m.data[:m.length])
}
