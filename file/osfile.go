package file

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/columnio/stream"
)

// osFile wraps an operating-system file descriptor.
//
// It owns the open/close lifecycle, caches the file size observed at
// open time (-1 when the descriptor is not seekable), and tracks
// whether a positioned read has left the sequential position
// indeterminate.
//
// Writes are serialized under mu; positioned reads share no mutable
// state beyond the needSeek flag and may run concurrently.
type osFile struct {
	mu       sync.Mutex
	f        *os.File
	name     string
	mode     stream.FileMode
	size     int64
	open     atomic.Bool
	needSeek atomic.Bool
}

func openWritable(path string, truncate, append, writeOnly bool) (*osFile, error) {
	flags := os.O_CREATE
	if writeOnly {
		flags |= os.O_WRONLY
	} else {
		flags |= os.O_RDWR
	}
	if truncate {
		flags |= os.O_TRUNC
	}
	if append {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return nil, stream.WrapIO("open "+path, err)
	}

	o := &osFile{f: f, name: path}
	if writeOnly {
		o.mode = stream.ModeWrite
	} else {
		o.mode = stream.ModeReadWrite
	}
	if truncate {
		o.size = 0
	} else {
		fi, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, stream.WrapIO("stat "+path, err)
		}
		o.size = fi.Size()
	}
	o.open.Store(true)
	return o, nil
}

func openReadable(path string) (*osFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, stream.WrapIO("open "+path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, stream.WrapIO("stat "+path, err)
	}
	o := &osFile{f: f, name: path, mode: stream.ModeRead, size: fi.Size()}
	o.open.Store(true)
	return o, nil
}

// adoptFD wraps an already-open descriptor without truncating it. A
// non-seekable descriptor (pipe, socket, tty) gets an unknown size of
// -1 instead of failing.
func adoptFD(fd uintptr, name string, mode stream.FileMode) (*osFile, error) {
	f := os.NewFile(fd, name)
	if f == nil {
		return nil, stream.Invalidf("invalid file descriptor %d", fd)
	}
	o := &osFile{f: f, name: name, mode: mode, size: -1}
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		o.size = fi.Size()
	}
	o.open.Store(true)
	return o, nil
}

func (o *osFile) checkClosed() error {
	if !o.open.Load() {
		return stream.ErrClosed
	}
	return nil
}

func (o *osFile) checkPositioned() error {
	if o.needSeek.Load() {
		return stream.Invalidf("need Seek after ReadAt before implicitly-positioned operation")
	}
	return nil
}

func (o *osFile) read(p []byte) (int, error) {
	if err := o.checkClosed(); err != nil {
		return 0, err
	}
	if err := o.checkPositioned(); err != nil {
		return 0, err
	}
	n, err := io.ReadFull(o.f, p)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	if err != nil {
		return n, stream.WrapIO("read "+o.name, err)
	}
	return n, nil
}

func (o *osFile) readAt(p []byte, position int64) (int, error) {
	if err := o.checkClosed(); err != nil {
		return 0, err
	}
	if position < 0 {
		return 0, stream.Invalidf("negative read position %d", position)
	}
	// pread leaves the implicit position undefined on some platforms;
	// require a Seek before the next sequential operation.
	o.needSeek.Store(true)
	n, err := o.f.ReadAt(p, position)
	if errors.Is(err, io.EOF) {
		return n, nil
	}
	if err != nil {
		return n, stream.WrapIO("read "+o.name, err)
	}
	return n, nil
}

func (o *osFile) seek(position int64) error {
	if err := o.checkClosed(); err != nil {
		return err
	}
	if position < 0 {
		return stream.Invalidf("negative seek position %d", position)
	}
	if _, err := o.f.Seek(position, io.SeekStart); err != nil {
		return stream.WrapIO("seek "+o.name, err)
	}
	o.needSeek.Store(false)
	return nil
}

func (o *osFile) tell() (int64, error) {
	if err := o.checkClosed(); err != nil {
		return 0, err
	}
	pos, err := o.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, stream.WrapIO("tell "+o.name, err)
	}
	return pos, nil
}

func (o *osFile) write(p []byte) (int, error) {
	if err := o.checkClosed(); err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkPositioned(); err != nil {
		return 0, err
	}
	n, err := o.f.Write(p)
	if err != nil {
		return n, stream.WrapIO("write "+o.name, err)
	}
	return n, nil
}

func (o *osFile) sync() error {
	if err := o.checkClosed(); err != nil {
		return err
	}
	if err := o.f.Sync(); err != nil {
		return stream.WrapIO("sync "+o.name, err)
	}
	return nil
}

// close is idempotent and best-effort: the handle is marked closed
// before the descriptor close, so a failure is reported once and
// repeated closes are no-ops.
func (o *osFile) close() error {
	if !o.open.Swap(false) {
		return nil
	}
	if err := o.f.Close(); err != nil {
		return stream.WrapIO("close "+o.name, err)
	}
	return nil
}

func (o *osFile) fd() uintptr {
	return o.f.Fd()
}
