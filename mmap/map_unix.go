//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

func osMap(fd int, offset int64, length int, writable bool) ([]byte, error) {
	prot := unix.PROT_READ
	flags := unix.MAP_PRIVATE
	if writable {
		prot |= unix.PROT_WRITE
		// Writes must land in the backing file.
		flags = unix.MAP_SHARED
	}
	return unix.Mmap(fd, offset, length, prot, flags)
}

func osUnmap(data []byte) error {
	return unix.Munmap(data)
}

func osSync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func osTruncate(fd int, size int64) error {
	return unix.Ftruncate(fd, size)
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}

	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		// madvise wants page-aligned addresses; the hint is advisory,
		// so a misaligned slice is not an error.
		return nil
	}
	return err
}
