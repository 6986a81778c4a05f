package codec

import (
	"io"

	"github.com/klauspost/compress/s2"
)

type s2Codec struct{}

// S2 returns the s2 codec (snappy-compatible framing with better
// ratios).
func S2() Codec {
	return s2Codec{}
}

func (s2Codec) Name() string { return "s2" }

// Multistream is true: the framing format allows repeated stream
// identifier chunks, so concatenated streams decode transparently.
func (s2Codec) Multistream() bool { return true }

func (s2Codec) NewWriter(w io.Writer) (Writer, error) {
	return s2.NewWriter(w), nil
}

func (s2Codec) NewReader(r io.Reader) (Reader, error) {
	return &s2Reader{zr: s2.NewReader(r)}, nil
}

// s2Reader rebuilds the reader on Reset; frames are length-prefixed so
// the reader never over-consumes the underlying stream.
type s2Reader struct {
	zr *s2.Reader
}

func (r *s2Reader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *s2Reader) Reset(in io.Reader) error {
	r.zr = s2.NewReader(in)
	return nil
}

func (r *s2Reader) Close() error {
	r.zr = nil
	return nil
}
