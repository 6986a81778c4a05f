package file

import (
	"github.com/hupe1980/columnio/stream"
)

// FileOutputStream is a sequential operating-system file sink.
//
// Writes from concurrent goroutines are serialized internally.
type FileOutputStream struct {
	impl *osFile
}

var _ stream.OutputStream = (*FileOutputStream)(nil)

// OpenOutput opens path for writing. With append false the file is
// truncated; with append true new bytes go to the end.
func OpenOutput(path string, append bool) (*FileOutputStream, error) {
	impl, err := openWritable(path, !append, append, true)
	if err != nil {
		return nil, err
	}
	return stream.CloseOnFinalize(&FileOutputStream{impl: impl}), nil
}

// OpenOutputFD adopts an already-open descriptor without truncating it.
// Non-seekable descriptors (pipes) are accepted; their size is unknown.
func OpenOutputFD(fd uintptr, name string) (*FileOutputStream, error) {
	impl, err := adoptFD(fd, name, stream.ModeWrite)
	if err != nil {
		return nil, err
	}
	return stream.CloseOnFinalize(&FileOutputStream{impl: impl}), nil
}

// Write appends p at the current position.
func (f *FileOutputStream) Write(p []byte) (int, error) {
	return f.impl.write(p)
}

// Flush is a no-op passthrough: bytes are already with the OS. Use Sync
// for durability.
func (f *FileOutputStream) Flush() error {
	return f.impl.checkClosed()
}

// Sync asks the OS to flush the file to stable storage.
func (f *FileOutputStream) Sync() error {
	return f.impl.sync()
}

// Tell returns the current write position.
func (f *FileOutputStream) Tell() (int64, error) {
	return f.impl.tell()
}

// Close closes the descriptor. It is idempotent.
func (f *FileOutputStream) Close() error {
	return f.impl.close()
}

// Abort closes without flushing anything further.
func (f *FileOutputStream) Abort() error {
	return f.impl.close()
}

// Closed reports whether the file has been closed.
func (f *FileOutputStream) Closed() bool {
	return !f.impl.open.Load()
}

// Fd returns the underlying descriptor.
func (f *FileOutputStream) Fd() uintptr {
	return f.impl.fd()
}

// Kind reports that the stream is descriptor-backed.
func (f *FileOutputStream) Kind() stream.FileKind {
	return stream.KindFile
}

// Size returns the size cached at open time; -1 when unknown.
func (f *FileOutputStream) Size() (int64, error) {
	if err := f.impl.checkClosed(); err != nil {
		return 0, err
	}
	return f.impl.size, nil
}
