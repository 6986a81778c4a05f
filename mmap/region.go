package mmap

import (
	"fmt"
	"sync/atomic"
)

// region owns one mapped extent. The mapping itself holds one
// reference; every buffer sliced from the region holds another. The
// memory is unmapped when the last reference is released, so exported
// buffers stay valid after the file object is closed.
type region struct {
	data []byte
	refs atomic.Int64
}

func newRegion(data []byte) *region {
	r := &region{data: data}
	r.refs.Store(1)
	return r
}

// Retain adds a reference. Satisfies buffer.Owner.
func (r *region) Retain() {
	r.refs.Add(1)
}

// Release drops a reference, unmapping on the last one. An unmap
// failure means the address space is in an undefined state, which is
// not recoverable.
func (r *region) Release() {
	n := r.refs.Add(-1)
	switch {
	case n > 0:
	case n == 0:
		if r.data != nil {
			if err := osUnmap(r.data); err != nil {
				panic(fmt.Sprintf("mmap: munmap failed: %v", err))
			}
			r.data = nil
		}
	default:
		panic("mmap: region released more times than retained")
	}
}

// Refs returns the current holder count.
func (r *region) Refs() int64 {
	return r.refs.Load()
}

// detach forgets the mapped bytes so that the final Release does not
// unmap them. Used before remapping the extent in place, which would
// otherwise double-unmap.
func (r *region) detach() {
	r.data = nil
}

// exported reports whether holders other than the mapping itself exist.
func (r *region) exported() bool {
	return r.Refs() > 1
}
