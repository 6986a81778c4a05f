package mmap

import (
	"os"
	"sync"

	"github.com/hupe1980/columnio/buffer"
	"github.com/hupe1980/columnio/stream"
)

// File is a memory-mapped file exposing the random-access stream
// contract with zero-copy reads.
//
// A zero-length file is opened without a mapping; the mapping is
// created by the first Resize. Buffers returned by reads alias the
// mapped region and keep it alive until released.
type File struct {
	// resizeMu guards pointer validity: it is held around every
	// slice-producing read on a writable mapping and by Resize, so a
	// remap can never invalidate a slice mid-read. writeMu serializes
	// writers and the position updates they make. Resize takes both,
	// writeMu first.
	writeMu  sync.Mutex
	resizeMu sync.Mutex
	guard    stream.SharedExclusiveChecker

	f        *os.File
	path     string
	mode     stream.FileMode
	region   *region
	fileSize int64 // size of the backing file
	mapLen   int64 // mapped length; == fileSize unless partial
	mapOff   int64 // file offset of the mapping
	position int64
	closed   bool
}

var _ stream.RandomAccessFile = (*File)(nil)

type config struct {
	offset int64
	length int64
}

// Option configures Open.
type Option func(*config)

// WithOffset maps starting at the given file offset, which must be a
// multiple of the system page size. Partial mappings cannot be resized.
func WithOffset(offset int64) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithLength maps only the given number of bytes. Partial mappings
// cannot be resized.
func WithLength(length int64) Option {
	return func(c *config) {
		c.length = length
	}
}

// Open memory-maps the file at path. Opening writable preserves
// existing content; it never truncates. Mapping is deferred until the
// first Resize when the file is currently empty.
func Open(path string, mode stream.FileMode, opts ...Option) (*File, error) {
	cfg := config{length: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.offset < 0 {
		return nil, stream.Invalidf("negative mapping offset %d", cfg.offset)
	}

	var f *os.File
	var err error
	if mode.Writable() {
		// The mapping needs PROT_READ even for write-mostly use, so
		// the descriptor is opened read-write.
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, stream.WrapIO("open "+path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, stream.WrapIO("stat "+path, err)
	}

	m := &File{f: f, path: path, mode: mode}
	if fi.Size() > 0 {
		if err := m.initMap(fi.Size(), false, cfg.offset, cfg.length); err != nil {
			_ = f.Close()
			return nil, err
		}
	} else if cfg.offset != 0 || cfg.length >= 0 {
		// The deferred mapping created by the first Resize always
		// covers the whole file; a window over nothing is a mistake.
		_ = f.Close()
		return nil, stream.Invalidf("cannot map a window of empty file %s", path)
	}
	return stream.CloseOnFinalize(m), nil
}

// Create creates (or truncates) the file at path, sizes it, and opens
// it as a read-write mapping.
func Create(path string, size int64) (*File, error) {
	if size < 0 {
		return nil, stream.Invalidf("negative file size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, stream.WrapIO("create "+path, err)
	}
	if err := osTruncate(int(f.Fd()), size); err != nil {
		_ = f.Close()
		return nil, stream.WrapIO("truncate "+path, err)
	}
	if err := f.Close(); err != nil {
		return nil, stream.WrapIO("close "+path, err)
	}
	return Open(path, stream.ModeReadWrite)
}

// initMap maps the file and records the extent. Callers hold the locks
// (or are still constructing the object).
func (m *File) initMap(initialSize int64, resizeFile bool, offset, length int64) error {
	if resizeFile {
		if err := osTruncate(int(m.f.Fd()), initialSize); err != nil {
			return stream.WrapIO("truncate "+m.path, err)
		}
	}
	if offset > initialSize {
		return stream.Invalidf("mapping offset %d is beyond file size %d", offset, initialSize)
	}
	mapLen := initialSize - offset
	if length > mapLen {
		return stream.Invalidf("mapping length %d is beyond file size %d", length, initialSize)
	}
	if length >= 0 {
		mapLen = length
	}
	data, err := osMap(int(m.f.Fd()), offset, int(mapLen), m.mode.Writable())
	if err != nil {
		return stream.WrapIO("memory mapping "+m.path, err)
	}
	m.region = newRegion(data)
	m.mapLen = mapLen
	m.mapOff = offset
	m.fileSize = initialSize
	return nil
}

// Resize grows or shrinks the mapping and the backing file.
//
// It fails with an I/O error on a read-only mapping, on a partial
// mapping, and while any exported buffer still references the region.
// Resize(0) unmaps and truncates the file to zero.
func (m *File) Resize(newSize int64) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.resizeMu.Lock()
	defer m.resizeMu.Unlock()

	m.guard.LockExclusive()
	defer m.guard.UnlockExclusive()

	if m.closed {
		return stream.ErrClosed
	}
	if !m.mode.Writable() {
		return stream.IOErrorf("cannot resize a readonly memory map")
	}
	if m.mapOff != 0 || m.mapLen != m.fileSize {
		return stream.IOErrorf("cannot resize a partial memory map")
	}
	if newSize < 0 {
		return stream.Invalidf("negative mapping size %d", newSize)
	}
	if m.region != nil && m.region.exported() {
		return stream.IOErrorf("cannot resize memory map while there are active readers")
	}

	if newSize == 0 {
		if m.mapLen > 0 {
			m.region.Release() // sole holder, unmaps now
			m.region = nil
			if err := osTruncate(int(m.f.Fd()), 0); err != nil {
				return stream.WrapIO("truncate "+m.path, err)
			}
			m.mapLen, m.fileSize, m.mapOff = 0, 0, 0
		}
		m.position = 0
		return nil
	}

	if m.region != nil {
		if err := osTruncate(int(m.f.Fd()), newSize); err != nil {
			return stream.WrapIO("truncate "+m.path, err)
		}
		data, err := osRemap(m.f, m.region.data, int(newSize), m.mode.Writable())
		if err != nil {
			return stream.WrapIO("remapping "+m.path, err)
		}
		// The old extent is gone; keep its region object from
		// unmapping the new one.
		m.region.detach()
		m.region.Release()
		m.region = newRegion(data)
		m.mapLen, m.fileSize = newSize, newSize
		m.mapOff = 0
		if m.position > m.mapLen {
			m.position = m.mapLen
		}
		return nil
	}

	// Mapping was deferred because the file was empty.
	return m.initMap(newSize, true, 0, -1)
}

func clampLen(n, available int64) int64 {
	if available < n {
		n = available
	}
	if n < 0 {
		n = 0
	}
	return n
}

// slice returns a zero-copy view of the mapped extent. Caller holds the
// resize lock when the mapping is writable.
func (m *File) slice(position, n int64) (*buffer.Buffer, error) {
	if m.closed {
		return nil, stream.ErrClosed
	}
	if position < 0 {
		return nil, stream.Invalidf("negative read position %d", position)
	}
	n = clampLen(n, m.mapLen-position)
	if n == 0 {
		return buffer.New(nil), nil
	}
	data := m.region.data[position : position+n : position+n]
	return buffer.NewOwned(data, m.region), nil
}

// lockForRead takes the resize lock when a concurrent Resize could
// otherwise invalidate the region mid-read. Read-only mappings cannot
// resize, so they skip it.
func (m *File) lockForRead() func() {
	if !m.mode.Writable() {
		return func() {}
	}
	m.resizeMu.Lock()
	m.guard.LockShared()
	return func() {
		m.guard.UnlockShared()
		m.resizeMu.Unlock()
	}
}

// ReadBufferAt returns up to n bytes at position as a zero-copy buffer
// that shares ownership of the mapped region. Reads past the end return
// an empty buffer, not an error.
func (m *File) ReadBufferAt(position, n int64) (*buffer.Buffer, error) {
	defer m.lockForRead()()
	return m.slice(position, n)
}

// ReadAt copies up to len(p) bytes from position into p, clamped to the
// mapped extent.
func (m *File) ReadAt(p []byte, position int64) (int, error) {
	defer m.lockForRead()()
	if m.closed {
		return 0, stream.ErrClosed
	}
	if position < 0 {
		return 0, stream.Invalidf("negative read position %d", position)
	}
	n := clampLen(int64(len(p)), m.mapLen-position)
	if n > 0 {
		copy(p, m.region.data[position:position+n])
	}
	return int(n), nil
}

// Read copies from the current position and advances it.
func (m *File) Read(p []byte) (int, error) {
	n, err := m.ReadAt(p, m.position)
	if err != nil {
		return 0, err
	}
	m.position += int64(n)
	return n, nil
}

// ReadBuffer returns the next n bytes as a zero-copy buffer and
// advances the position by the bytes actually available.
func (m *File) ReadBuffer(n int64) (*buffer.Buffer, error) {
	buf, err := m.ReadBufferAt(m.position, n)
	if err != nil {
		return nil, err
	}
	m.position += buf.Len()
	return buf, nil
}

func (m *File) writeLocked(position int64, p []byte) (int, error) {
	if m.closed || !m.mode.Writable() {
		return 0, stream.IOErrorf("unable to write to %s memory map", m.mode)
	}
	if position < 0 {
		return 0, stream.Invalidf("negative write position %d", position)
	}
	if position+int64(len(p)) > m.mapLen {
		return 0, stream.Invalidf("cannot write past end of memory map (position %d, %d bytes, size %d)",
			position, len(p), m.mapLen)
	}
	if len(p) == 0 {
		// Nothing to copy; the mapping may not even exist yet.
		m.position = position
		return 0, nil
	}
	n := copy(m.region.data[position:], p)
	m.position = position + int64(n)
	return n, nil
}

// Write copies p into the mapping at the current position. The mapping
// never grows implicitly; Resize first.
func (m *File) Write(p []byte) (int, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.writeLocked(m.position, p)
}

// WriteAt copies p into the mapping at an absolute position.
func (m *File) WriteAt(p []byte, position int64) (int, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.writeLocked(position, p)
}

// Seek sets the position. Seeking past the end is allowed; subsequent
// reads return zero bytes.
func (m *File) Seek(position int64) error {
	if m.closed {
		return stream.ErrClosed
	}
	if position < 0 {
		return stream.Invalidf("negative seek position %d", position)
	}
	m.position = position
	return nil
}

// Tell returns the current position.
func (m *File) Tell() (int64, error) {
	if m.closed {
		return 0, stream.ErrClosed
	}
	return m.position, nil
}

// Size returns the mapped length.
func (m *File) Size() (int64, error) {
	if m.closed {
		return 0, stream.ErrClosed
	}
	return m.mapLen, nil
}

// Flush is a no-op; writes land in the shared mapping immediately. Use
// Sync for durability.
func (m *File) Flush() error {
	if m.closed {
		return stream.ErrClosed
	}
	return nil
}

// Sync flushes mapped pages to the backing file.
func (m *File) Sync() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.closed {
		return stream.ErrClosed
	}
	if m.region == nil {
		return nil
	}
	if err := osSync(m.region.data); err != nil {
		return stream.WrapIO("msync "+m.path, err)
	}
	return nil
}

// Advise hints the kernel about the expected access pattern.
func (m *File) Advise(pattern AccessPattern) error {
	if m.closed {
		return stream.ErrClosed
	}
	if m.region == nil {
		return nil
	}
	return osAdvise(m.region.data, pattern)
}

// Close drops the mapping reference and closes the file. Memory is
// unmapped as soon as the last exported buffer is released. Close is
// idempotent.
func (m *File) Close() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.resizeMu.Lock()
	defer m.resizeMu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	if m.region != nil {
		m.region.Release()
		m.region = nil
	}
	if err := m.f.Close(); err != nil {
		return stream.WrapIO("close "+m.path, err)
	}
	return nil
}

// Abort is equivalent to Close; mapped writes are already shared with
// the file.
func (m *File) Abort() error {
	return m.Close()
}

// Closed reports whether the mapping has been closed.
func (m *File) Closed() bool {
	return m.closed
}

// Fd returns the backing file descriptor.
func (m *File) Fd() uintptr {
	return m.f.Fd()
}

// Kind reports that the stream is memory-backed.
func (m *File) Kind() stream.FileKind {
	return stream.KindMemory
}
