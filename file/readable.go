package file

import (
	"github.com/hupe1980/columnio/buffer"
	"github.com/hupe1980/columnio/stream"
)

// ReadableFile is an operating-system file opened for reading, with
// both sequential and positioned access.
//
// Concurrent ReadAt/ReadBufferAt calls are safe. Sequential reads share
// the file position and must be serialized by the caller.
type ReadableFile struct {
	impl *osFile
}

var _ stream.RandomAccessFile = (*ReadableFile)(nil)

// OpenReadable opens the file at path for reading.
func OpenReadable(path string) (*ReadableFile, error) {
	impl, err := openReadable(path)
	if err != nil {
		return nil, err
	}
	return stream.CloseOnFinalize(&ReadableFile{impl: impl}), nil
}

// OpenReadableFD adopts an already-open descriptor for reading.
func OpenReadableFD(fd uintptr, name string) (*ReadableFile, error) {
	impl, err := adoptFD(fd, name, stream.ModeRead)
	if err != nil {
		return nil, err
	}
	return stream.CloseOnFinalize(&ReadableFile{impl: impl}), nil
}

// Read fills p from the current position. A short count means end of
// file.
func (f *ReadableFile) Read(p []byte) (int, error) {
	return f.impl.read(p)
}

// ReadAt fills p from an absolute position without touching the
// sequential cursor. Afterwards the sequential position is undefined
// until Seek.
func (f *ReadableFile) ReadAt(p []byte, position int64) (int, error) {
	return f.impl.readAt(p, position)
}

// ReadBuffer reads the next n bytes into a fresh buffer. If fewer bytes
// are available the buffer is shrunk to the actual count and the
// capacity slack is zeroed.
func (f *ReadableFile) ReadBuffer(n int64) (*buffer.Buffer, error) {
	return stream.ReadFullBuffer(f, n)
}

// ReadBufferAt is the positioned equivalent of ReadBuffer.
func (f *ReadableFile) ReadBufferAt(position, n int64) (*buffer.Buffer, error) {
	if n < 0 {
		return nil, stream.Invalidf("negative read length %d", n)
	}
	m, err := buffer.NewResizable(n)
	if err != nil {
		return nil, err
	}
	nr, err := f.impl.readAt(m.Bytes(), position)
	if err != nil {
		return nil, err
	}
	if int64(nr) < n {
		if err := m.Resize(int64(nr)); err != nil {
			return nil, err
		}
		m.ZeroPadding()
	}
	return m.Freeze(), nil
}

// Seek sets the sequential position to an absolute offset.
func (f *ReadableFile) Seek(position int64) error {
	return f.impl.seek(position)
}

// Tell returns the current sequential position.
func (f *ReadableFile) Tell() (int64, error) {
	return f.impl.tell()
}

// Size returns the file size cached at open time; -1 when unknown.
func (f *ReadableFile) Size() (int64, error) {
	if err := f.impl.checkClosed(); err != nil {
		return 0, err
	}
	return f.impl.size, nil
}

// Close closes the descriptor. It is idempotent.
func (f *ReadableFile) Close() error {
	return f.impl.close()
}

// Abort is equivalent to Close; readers buffer nothing.
func (f *ReadableFile) Abort() error {
	return f.impl.close()
}

// Closed reports whether the file has been closed.
func (f *ReadableFile) Closed() bool {
	return !f.impl.open.Load()
}

// Fd returns the underlying descriptor.
func (f *ReadableFile) Fd() uintptr {
	return f.impl.fd()
}

// Kind reports that the stream is descriptor-backed.
func (f *ReadableFile) Kind() stream.FileKind {
	return stream.KindFile
}
