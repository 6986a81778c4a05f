package stream

import (
	"github.com/hupe1980/columnio/buffer"
)

// SegmentReader is a bounded InputStream over a window of a
// RandomAccessFile. It only ever issues ReadAt calls, so independent
// SegmentReaders over the same file are safe to drive from separate
// goroutines.
//
// Closing a SegmentReader does not close the underlying file.
type SegmentReader struct {
	file     RandomAccessFile
	offset   int64
	length   int64
	position int64
	closed   bool
}

// NewSegmentReader returns an InputStream over length bytes of file
// starting at offset.
func NewSegmentReader(file RandomAccessFile, offset, length int64) (*SegmentReader, error) {
	if offset < 0 || length < 0 {
		return nil, Invalidf("negative segment bounds (offset %d, length %d)", offset, length)
	}
	return &SegmentReader{file: file, offset: offset, length: length}, nil
}

func (r *SegmentReader) checkOpen() error {
	if r.closed {
		return ErrClosed
	}
	return nil
}

// Read fills p from the remaining window.
func (r *SegmentReader) Read(p []byte) (int, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	remaining := r.length - r.position
	if remaining <= 0 {
		return 0, nil
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := r.file.ReadAt(p, r.offset+r.position)
	r.position += int64(n)
	return n, err
}

// ReadBuffer returns the next n bytes of the window as a Buffer. When
// the underlying file supports zero-copy positioned reads the buffer
// aliases its memory.
func (r *SegmentReader) ReadBuffer(n int64) (*buffer.Buffer, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, Invalidf("negative read length %d", n)
	}
	if remaining := r.length - r.position; n > remaining {
		n = max(remaining, 0)
	}
	buf, err := r.file.ReadBufferAt(r.offset+r.position, n)
	if err != nil {
		return nil, err
	}
	r.position += buf.Len()
	return buf, nil
}

// Tell returns the position within the window.
func (r *SegmentReader) Tell() (int64, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	return r.position, nil
}

// Close marks the reader closed. The underlying file is left open.
func (r *SegmentReader) Close() error {
	r.closed = true
	return nil
}

// Abort is equivalent to Close; there is nothing buffered to discard.
func (r *SegmentReader) Abort() error {
	return r.Close()
}

// Closed reports whether the reader has been closed.
func (r *SegmentReader) Closed() bool {
	return r.closed
}
