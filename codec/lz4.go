package codec

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

type lz4Codec struct {
	level lz4.CompressionLevel
}

// LZ4 returns the lz4 frame codec at the fast compression level.
func LZ4() Codec {
	return LZ4Level(lz4.Fast)
}

// LZ4Level returns the lz4 frame codec at the given level.
func LZ4Level(level lz4.CompressionLevel) Codec {
	return &lz4Codec{level: level}
}

func (c *lz4Codec) Name() string { return "lz4" }

// Multistream is false: the frame reader stops at the end mark, so a
// concatenated stream is decoded frame by frame via Reset.
func (c *lz4Codec) Multistream() bool { return false }

func (c *lz4Codec) NewWriter(w io.Writer) (Writer, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(c.level)); err != nil {
		return nil, err
	}
	return zw, nil
}

func (c *lz4Codec) NewReader(r io.Reader) (Reader, error) {
	return &lz4Reader{zr: lz4.NewReader(r)}, nil
}

// lz4Reader rebuilds the frame reader on Reset. The lz4 frame format
// has explicit block sizes, so the reader never consumes bytes past the
// end mark and a rebuilt reader picks up exactly at the next frame.
type lz4Reader struct {
	zr *lz4.Reader
}

func (r *lz4Reader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *lz4Reader) Reset(in io.Reader) error {
	r.zr = lz4.NewReader(in)
	return nil
}

func (r *lz4Reader) Close() error {
	r.zr = nil
	return nil
}
