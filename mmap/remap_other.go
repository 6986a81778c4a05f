//go:build unix && !linux

package mmap

import (
	"os"
)

// osRemap emulates mremap by unmapping the old extent and mapping the
// file again at its new size. The backing file has already been
// truncated to newSize.
func osRemap(f *os.File, old []byte, newSize int, writable bool) ([]byte, error) {
	if err := osUnmap(old); err != nil {
		return nil, err
	}
	return osMap(int(f.Fd()), 0, newSize, writable)
}
