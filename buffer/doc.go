// Package buffer provides reference-counted views over contiguous byte
// ranges.
//
// A Buffer is an immutable view that may alias externally owned memory
// (typically a memory-mapped region). Slicing a Buffer never copies data:
// the slice shares ownership of the backing region, and the region stays
// alive until the last holder releases it.
//
// A MutableBuffer is a writable, resizable allocation with 64-byte
// capacity alignment. Capacity slack beyond the logical length can be
// zeroed with ZeroPadding so that vectorized readers never observe
// uninitialized bytes.
package buffer
