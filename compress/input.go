package compress

import (
	"errors"
	"io"

	"github.com/hupe1980/columnio/buffer"
	"github.com/hupe1980/columnio/codec"
	"github.com/hupe1980/columnio/stream"
)

// InputStream reads decompressed bytes from a codec-compressed raw
// stream.
//
// End of the raw stream while the current frame is cleanly finished is
// a normal end of stream; if more raw bytes follow, they are decoded as
// a new frame. End of the raw stream in the middle of a frame is an
// ErrIO ("truncated compressed stream").
//
// Instances are not synchronized; use one goroutine per stream.
type InputStream struct {
	raw      stream.InputStream
	codec    codec.Codec
	feeder   *chunkFeeder
	dec      codec.Reader
	totalOut int64
	closed   bool
}

// NewInputStream wraps raw with a decompressor for c.
func NewInputStream(c codec.Codec, raw stream.InputStream, opts ...Option) (*InputStream, error) {
	cfg := applyOptions(opts)
	return &InputStream{
		raw:    raw,
		codec:  c,
		feeder: newChunkFeeder(raw, cfg.chunkSize),
	}, nil
}

// Read fills p with decompressed bytes. A zero count means end of
// stream.
func (s *InputStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}

	total := 0
	for total < len(p) {
		if s.dec == nil {
			ok, err := s.feeder.hasData()
			if err != nil {
				return total, err
			}
			if !ok {
				break // clean end of stream
			}
			dec, err := s.codec.NewReader(s.feeder)
			if err != nil {
				return total, stream.WrapIO("init decompressor", err)
			}
			s.dec = dec
		}

		n, err := s.dec.Read(p[total:])
		total += n
		if err == nil {
			if n == 0 {
				// Decoder made no progress without reporting an
				// error; treat as needing another pass.
				continue
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			if s.codec.Multistream() {
				break // true end of the raw stream
			}
			// One frame ended; restart on the next, if any.
			ok, ferr := s.feeder.hasData()
			if ferr != nil {
				return total, ferr
			}
			if !ok {
				break
			}
			if err := s.dec.Reset(s.feeder); err != nil {
				return total, stream.WrapIO("reset decompressor", err)
			}
			continue
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return total, stream.IOErrorf("truncated compressed stream")
		}
		return total, stream.WrapIO("decompress", err)
	}

	s.totalOut += int64(total)
	return total, nil
}

// ReadBuffer returns the next n decompressed bytes, shrunk to the bytes
// actually available with zeroed capacity slack.
func (s *InputStream) ReadBuffer(n int64) (*buffer.Buffer, error) {
	return stream.ReadFullBuffer(s, n)
}

// Tell returns the cumulative number of decompressed bytes read.
func (s *InputStream) Tell() (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	return s.totalOut, nil
}

// Close closes the decompressor and the raw stream. It is idempotent.
func (s *InputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.dec != nil {
		if err := s.dec.Close(); err != nil {
			return err
		}
		s.dec = nil
	}
	return s.raw.Close()
}

// Abort force-closes the raw stream.
func (s *InputStream) Abort() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.dec = nil
	return s.raw.Abort()
}

// Closed reports whether the stream has been closed.
func (s *InputStream) Closed() bool {
	return s.closed
}

// Raw returns the underlying stream.
func (s *InputStream) Raw() stream.InputStream {
	return s.raw
}

// chunkFeeder hands the decompressor raw compressed bytes, refilling
// its chunk from the underlying stream on demand. Implementing
// io.ByteReader keeps byte-oriented decoders from over-reading past a
// frame boundary.
type chunkFeeder struct {
	raw stream.InputStream
	buf []byte
	pos int
	n   int
	eof bool
}

func newChunkFeeder(raw stream.InputStream, chunkSize int) *chunkFeeder {
	return &chunkFeeder{raw: raw, buf: make([]byte, chunkSize)}
}

func (f *chunkFeeder) fill() error {
	if f.eof || f.pos < f.n {
		return nil
	}
	n, err := f.raw.Read(f.buf)
	if err != nil {
		return err
	}
	f.pos, f.n = 0, n
	if n == 0 {
		f.eof = true
	}
	return nil
}

// hasData reports whether at least one raw byte is available.
func (f *chunkFeeder) hasData() (bool, error) {
	if err := f.fill(); err != nil {
		return false, err
	}
	return f.pos < f.n, nil
}

func (f *chunkFeeder) Read(p []byte) (int, error) {
	if err := f.fill(); err != nil {
		return 0, err
	}
	if f.pos == f.n {
		return 0, io.EOF
	}
	n := copy(p, f.buf[f.pos:f.n])
	f.pos += n
	return n, nil
}

func (f *chunkFeeder) ReadByte() (byte, error) {
	if err := f.fill(); err != nil {
		return 0, err
	}
	if f.pos == f.n {
		return 0, io.EOF
	}
	b := f.buf[f.pos]
	f.pos++
	return b, nil
}
