// Package codec centralizes streaming compression.
//
// A Codec produces frame writers and readers around arbitrary byte
// streams. Codec names are stable and may be embedded in persisted
// headers; changing the codec of existing data is a breaking change.
package codec

import (
	"fmt"
	"io"
)

// Writer compresses bytes written to it into an underlying stream.
// Flush makes all buffered input decodable by a reader; Close ends the
// current compression frame. Neither closes the underlying stream.
type Writer interface {
	io.WriteCloser
	Flush() error
}

// Reader decompresses bytes from an underlying stream. Reset prepares
// the reader to decode a fresh frame from in, reusing internal state
// where the implementation allows.
type Reader interface {
	io.ReadCloser
	Reset(in io.Reader) error
}

// Codec is a pluggable streaming compressor/decompressor.
// Implementations must be safe for concurrent use; the Writers and
// Readers they produce are not.
type Codec interface {
	Name() string
	NewWriter(w io.Writer) (Writer, error)
	NewReader(r io.Reader) (Reader, error)

	// Multistream reports whether the codec's Reader transparently
	// decodes concatenated frames. When false, callers restart the
	// reader with Reset at each frame boundary.
	Multistream() bool
}

// Default is the codec used when none is configured.
var Default = Zstd()

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "zstd":
		return Zstd(), true
	case "lz4":
		return LZ4(), true
	case "gzip":
		return Gzip(), true
	case "flate":
		return Flate(), true
	case "s2":
		return S2(), true
	default:
		return nil, false
	}
}

// MustByName is ByName for static codec names; it panics on unknown
// names.
func MustByName(name string) Codec {
	c, ok := ByName(name)
	if !ok {
		panic(fmt.Sprintf("codec: unknown codec %q", name))
	}
	return c
}
