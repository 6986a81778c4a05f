package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// osRemap grows or shrinks a mapping in place with mremap(2), moving it
// if the adjacent address space is occupied. Exported buffers must not
// reference the old extent; the caller checks that first.
func osRemap(_ *os.File, old []byte, newSize int, _ bool) ([]byte, error) {
	return unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
}
