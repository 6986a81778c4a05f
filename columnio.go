package columnio

import (
	"github.com/hupe1980/columnio/codec"
	"github.com/hupe1980/columnio/compress"
	"github.com/hupe1980/columnio/file"
	"github.com/hupe1980/columnio/mmap"
	"github.com/hupe1980/columnio/stream"
)

// OpenInput opens an operating-system file for random-access reads.
func OpenInput(path string) (*file.ReadableFile, error) {
	return file.OpenReadable(path)
}

// OpenOutput opens an operating-system file for sequential writes,
// truncating unless append is true.
func OpenOutput(path string, append bool) (*file.FileOutputStream, error) {
	return file.OpenOutput(path, append)
}

// OpenMemoryMap memory-maps the file at path for zero-copy access.
func OpenMemoryMap(path string, mode stream.FileMode, opts ...mmap.Option) (*mmap.File, error) {
	return mmap.Open(path, mode, opts...)
}

// CreateMemoryMap creates a file of the given size and memory-maps it
// read-write.
func CreateMemoryMap(path string, size int64) (*mmap.File, error) {
	return mmap.Create(path, size)
}

// NewCompressedInput wraps raw with transparent decompression.
func NewCompressedInput(c codec.Codec, raw stream.InputStream, opts ...compress.Option) (*compress.InputStream, error) {
	return compress.NewInputStream(c, raw, opts...)
}

// NewCompressedOutput wraps raw with transparent compression. Closing
// the wrapper finalizes the compressed frame and closes raw.
func NewCompressedOutput(c codec.Codec, raw stream.OutputStream, opts ...compress.Option) (*compress.OutputStream, error) {
	return compress.NewOutputStream(c, raw, opts...)
}
