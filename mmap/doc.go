// Package mmap provides memory-mapped file streams for zero-copy I/O.
//
// # Overview
//
// Memory mapping gives direct access to file contents without copying
// data through kernel buffers. Reads return buffers that alias the
// mapped region directly; the region stays mapped until the last such
// buffer is released.
//
// # Usage
//
//	m, err := mmap.Open("table.bin", stream.ModeRead)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-copy positioned read
//	buf, _ := m.ReadBufferAt(offset, n)
//	defer buf.Release()
//
//	// Kernel hints for access patterns
//	m.Advise(mmap.AccessSequential)
//
// Writable mappings support in-place writes within the mapped extent
// and Resize, which remaps the region; a resize is refused while any
// exported buffer still references the mapping.
//
// # Thread Safety
//
// Positioned reads are safe for concurrent use; a resize lock keeps a
// concurrent Resize from invalidating slices mid-read. Writes and the
// positions they mutate are serialized under a separate write lock.
// Sequential reads share the cursor and need external serialization.
//
// # Platform Support
//
// Unix only (Linux, macOS, BSD). Linux grows mappings in place with
// mremap(2); other platforms unmap and remap.
package mmap
