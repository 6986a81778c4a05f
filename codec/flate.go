package codec

import (
	"io"

	"github.com/klauspost/compress/flate"
)

type flateCodec struct {
	level int
}

// Flate returns the raw deflate codec at the default compression level.
func Flate() Codec {
	return FlateLevel(flate.DefaultCompression)
}

// FlateLevel returns the raw deflate codec at the given level.
func FlateLevel(level int) Codec {
	return &flateCodec{level: level}
}

func (c *flateCodec) Name() string { return "flate" }

// Multistream is false: raw deflate has no frame concatenation concept;
// each stream is decoded via Reset.
func (c *flateCodec) Multistream() bool { return false }

func (c *flateCodec) NewWriter(w io.Writer) (Writer, error) {
	return flate.NewWriter(w, c.level)
}

func (c *flateCodec) NewReader(r io.Reader) (Reader, error) {
	return &flateReader{rc: flate.NewReader(r)}, nil
}

type flateReader struct {
	rc io.ReadCloser
}

func (r *flateReader) Read(p []byte) (int, error) {
	return r.rc.Read(p)
}

func (r *flateReader) Reset(in io.Reader) error {
	return r.rc.(flate.Resetter).Reset(in, nil)
}

func (r *flateReader) Close() error {
	return r.rc.Close()
}
