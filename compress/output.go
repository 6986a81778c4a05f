package compress

import (
	"bufio"
	"sync"

	"github.com/hupe1980/columnio/codec"
	"github.com/hupe1980/columnio/stream"
)

// OutputStream compresses written bytes into a raw stream.
//
// Compressed output is staged in a fixed-size chunk and flushed to the
// raw stream whenever the chunk fills, so small writes do not translate
// into small raw writes. Write, Flush, Tell and Close are serialized
// under one mutex and may be called from concurrent goroutines.
type OutputStream struct {
	mu      sync.Mutex
	raw     stream.OutputStream
	staged  *bufio.Writer
	enc     codec.Writer
	totalIn int64
	open    bool
}

// NewOutputStream wraps raw with a compressor for c.
func NewOutputStream(c codec.Codec, raw stream.OutputStream, opts ...Option) (*OutputStream, error) {
	cfg := applyOptions(opts)
	staged := bufio.NewWriterSize(writerAdapter{raw}, cfg.chunkSize)
	enc, err := c.NewWriter(staged)
	if err != nil {
		return nil, stream.WrapIO("init compressor", err)
	}
	return &OutputStream{
		raw:    raw,
		staged: staged,
		enc:    enc,
		open:   true,
	}, nil
}

// Write compresses p. The count returned is the number of input bytes
// accepted, not the compressed size.
func (s *OutputStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, stream.ErrClosed
	}
	n, err := s.enc.Write(p)
	s.totalIn += int64(n)
	if err != nil {
		return n, stream.WrapIO("compress", err)
	}
	return n, nil
}

// Flush drains the compressor and pushes all staged compressed bytes to
// the raw stream. The bytes written so far become decodable.
func (s *OutputStream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return stream.ErrClosed
	}
	if err := s.enc.Flush(); err != nil {
		return stream.WrapIO("flush compressor", err)
	}
	if err := s.staged.Flush(); err != nil {
		return err
	}
	return s.raw.Flush()
}

// Tell returns the total number of bytes accepted for compression.
func (s *OutputStream) Tell() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, stream.ErrClosed
	}
	return s.totalIn, nil
}

// Close finalizes the compression frame, drains staged output and
// closes the raw stream. It is idempotent.
func (s *OutputStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	s.open = false
	if err := s.enc.Close(); err != nil {
		return stream.WrapIO("finalize compressor", err)
	}
	if err := s.staged.Flush(); err != nil {
		return err
	}
	return s.raw.Close()
}

// Abort discards staged output and force-closes the raw stream without
// finalizing the frame.
func (s *OutputStream) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil
	}
	s.open = false
	return s.raw.Abort()
}

// Closed reports whether the stream has been closed.
func (s *OutputStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.open
}

// Raw returns the underlying stream.
func (s *OutputStream) Raw() stream.OutputStream {
	return s.raw
}

// writerAdapter exposes an OutputStream as io.Writer for the staging
// bufio.Writer.
type writerAdapter struct {
	raw stream.OutputStream
}

func (w writerAdapter) Write(p []byte) (int, error) {
	return w.raw.Write(p)
}
