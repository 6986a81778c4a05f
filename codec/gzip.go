package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type gzipCodec struct {
	level int
}

// Gzip returns the gzip codec at the default compression level.
func Gzip() Codec {
	return GzipLevel(gzip.DefaultCompression)
}

// GzipLevel returns the gzip codec at the given compression level.
func GzipLevel(level int) Codec {
	return &gzipCodec{level: level}
}

func (c *gzipCodec) Name() string { return "gzip" }

// Multistream is true: gzip readers decode concatenated members by
// default.
func (c *gzipCodec) Multistream() bool { return true }

func (c *gzipCodec) NewWriter(w io.Writer) (Writer, error) {
	return gzip.NewWriterLevel(w, c.level)
}

func (c *gzipCodec) NewReader(r io.Reader) (Reader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
