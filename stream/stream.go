package stream

import (
	"io"

	"github.com/hupe1980/columnio/buffer"
)

// FileKind describes what backs a stream.
type FileKind int

const (
	// KindFile is a stream backed by an operating-system descriptor.
	KindFile FileKind = iota
	// KindMemory is a stream backed by mapped or in-process memory.
	KindMemory
)

func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FileMode describes the access mode of an open stream.
type FileMode int

const (
	// ModeRead allows reading only.
	ModeRead FileMode = iota
	// ModeWrite allows writing only.
	ModeWrite
	// ModeReadWrite allows both.
	ModeReadWrite
)

func (m FileMode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeReadWrite:
		return "readwrite"
	default:
		return "unknown"
	}
}

// Readable reports whether the mode permits reads.
func (m FileMode) Readable() bool {
	return m == ModeRead || m == ModeReadWrite
}

// Writable reports whether the mode permits writes.
func (m FileMode) Writable() bool {
	return m == ModeWrite || m == ModeReadWrite
}

// File is the lifecycle contract common to all streams.
//
// Close is idempotent. Abort force-closes without flushing buffered
// data; on sources it is equivalent to Close. All other operations on a
// closed stream fail with ErrClosed.
type File interface {
	Close() error
	Abort() error
	Closed() bool
}

// InputStream is a sequential byte source.
//
// Read fills p and returns the number of bytes read; a count short of
// len(p) with a nil error means the source is exhausted, and zero means
// end of stream. ReadBuffer returns the next n bytes as a Buffer sized
// to the bytes actually available.
type InputStream interface {
	File
	Read(p []byte) (int, error)
	ReadBuffer(n int64) (*buffer.Buffer, error)
	Tell() (int64, error)
}

// OutputStream is a sequential byte sink.
//
// Flush pushes buffered bytes toward the underlying resource; it does
// not imply durability (no fsync).
type OutputStream interface {
	File
	Write(p []byte) (int, error)
	Flush() error
	Tell() (int64, error)
}

// RandomAccessFile extends InputStream with positioned reads that are
// independent of the sequential cursor. Seek positions are absolute.
//
// ReadAt carries no shared position state, so concurrent ReadAt calls
// from multiple goroutines are safe; concurrent sequential Reads are
// not and must be serialized by the caller.
type RandomAccessFile interface {
	InputStream
	Seek(position int64) error
	ReadAt(p []byte, position int64) (int, error)
	ReadBufferAt(position, n int64) (*buffer.Buffer, error)
	Size() (int64, error)
}

// AsReader adapts an InputStream to io.Reader, translating the
// zero-count end-of-stream convention into io.EOF.
func AsReader(s InputStream) io.Reader {
	return &readerAdapter{s: s}
}

type readerAdapter struct {
	s InputStream
}

func (r *readerAdapter) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := r.s.Read(p)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadFullBuffer reads exactly n bytes from s into a fresh buffer,
// shrinking to the bytes actually available and zeroing the capacity
// slack. It is the shared implementation behind ReadBuffer.
func ReadFullBuffer(s InputStream, n int64) (*buffer.Buffer, error) {
	if n < 0 {
		return nil, Invalidf("negative read length %d", n)
	}
	m, err := buffer.NewResizable(n)
	if err != nil {
		return nil, err
	}
	nr, err := s.Read(m.Bytes())
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
