// Package file provides operating-system file streams: ReadableFile for
// sequential and positioned reads, FileOutputStream for sequential
// writes.
//
// Both are thin wrappers over a descriptor handle that enforces the
// positioned-versus-sequential discipline: once ReadAt has been issued,
// the implicit file position is undefined and sequential Read/Write
// fail until an explicit Seek. Positioned reads use pread and are safe
// to issue concurrently.
package file
