package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type zstdCodec struct {
	level zstd.EncoderLevel
}

// Zstd returns the zstd codec at the default compression level.
func Zstd() Codec {
	return ZstdLevel(zstd.SpeedDefault)
}

// ZstdLevel returns the zstd codec at the given encoder level.
func ZstdLevel(level zstd.EncoderLevel) Codec {
	return &zstdCodec{level: level}
}

func (c *zstdCodec) Name() string { return "zstd" }

// Multistream is true: the decoder keeps decoding frames until the
// underlying stream is exhausted.
func (c *zstdCodec) Multistream() bool { return true }

func (c *zstdCodec) NewWriter(w io.Writer) (Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(c.level))
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func (c *zstdCodec) NewReader(r io.Reader) (Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &zstdReader{dec: dec}, nil
}

type zstdReader struct {
	dec *zstd.Decoder
}

func (r *zstdReader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *zstdReader) Reset(in io.Reader) error {
	return r.dec.Reset(in)
}

func (r *zstdReader) Close() error {
	r.dec.Close()
	return nil
}
