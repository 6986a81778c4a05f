package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnio/stream"
)

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, content, 0o666))
	return path
}

func TestReadableFileSequential(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)

	p := make([]byte, 4)
	n, err := f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("0123"), p)

	pos, err := f.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	// Reading past the end returns a short count, not an error.
	p = make([]byte, 10)
	n, err = f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("456789"), p[:n])

	n, err = f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReadableFilePositioned(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	p := make([]byte, 3)
	n, err := f.ReadAt(p, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("567"), p)

	// After a positioned read the sequential position is undefined
	// until Seek.
	_, err = f.Read(p)
	assert.ErrorIs(t, err, stream.ErrInvalid)

	require.NoError(t, f.Seek(0))
	n, err = f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("012"), p[:n])
}

func TestReadableFileNegativePositions(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.ReadAt(make([]byte, 1), -1)
	assert.ErrorIs(t, err, stream.ErrInvalid)

	assert.ErrorIs(t, f.Seek(-1), stream.ErrInvalid)

	_, err = f.ReadBufferAt(0, -1)
	assert.ErrorIs(t, err, stream.ErrInvalid)
}

func TestReadBufferShrinks(t *testing.T) {
	path := writeTestFile(t, []byte("abc"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.ReadBuffer(100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), buf.Len())
	assert.Equal(t, []byte("abc"), buf.Bytes())
}

func TestReadBufferZeroesCapacitySlack(t *testing.T) {
	path := writeTestFile(t, []byte{0xff, 0xff, 0xff})

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.ReadBuffer(100)
	require.NoError(t, err)
	require.Equal(t, int64(3), buf.Len())
	require.Greater(t, buf.Cap(), buf.Len())

	full := buf.Bytes()[:buf.Cap()]
	for i := buf.Len(); i < buf.Cap(); i++ {
		assert.Equal(t, byte(0), full[i])
	}
}

func TestReadBufferAtPastEnd(t *testing.T) {
	path := writeTestFile(t, []byte("abcdef"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.ReadBufferAt(4, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), buf.Len())
	assert.Equal(t, []byte("ef"), buf.Bytes())

	buf, err = f.ReadBufferAt(100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), buf.Len())
}

func TestConcurrentReadAt(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				p := make([]byte, 1)
				n, err := f.ReadAt(p, int64(i))
				assert.NoError(t, err)
				assert.Equal(t, 1, n)
				assert.Equal(t, byte('0'+i), p[0])
			}
		}()
	}
	wg.Wait()
}

func TestCloseIdempotent(t *testing.T) {
	path := writeTestFile(t, []byte("data"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	assert.True(t, f.Closed())

	_, err = f.Read(make([]byte, 1))
	assert.ErrorIs(t, err, stream.ErrClosed)
	_, err = f.Size()
	assert.ErrorIs(t, err, stream.ErrClosed)
}

func TestOutputTruncates(t *testing.T) {
	path := writeTestFile(t, []byte("old content"))

	out, err := OpenOutput(path, false)
	require.NoError(t, err)

	_, err = out.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), content)
}

func TestOutputAppends(t *testing.T) {
	path := writeTestFile(t, []byte("head"))

	out, err := OpenOutput(path, true)
	require.NoError(t, err)

	_, err = out.Write([]byte("+tail"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("head+tail"), content)
}

func TestOutputSizeAndTell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	out, err := OpenOutput(path, false)
	require.NoError(t, err)
	defer out.Close()

	size, err := out.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)

	_, err = out.Write([]byte("12345"))
	require.NoError(t, err)

	pos, err := out.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	require.NoError(t, out.Flush())
	require.NoError(t, out.Sync())
}

func TestOutputConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	out, err := OpenOutput(path, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := out.Write([]byte("chunk"))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	require.NoError(t, out.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8*50*5, len(content))
}

func TestReadableFD(t *testing.T) {
	path := writeTestFile(t, []byte("via descriptor"))

	raw, err := os.Open(path)
	require.NoError(t, err)

	f, err := OpenReadableFD(raw.Fd(), path)
	require.NoError(t, err)
	defer f.Close()

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(14), size)

	buf, err := f.ReadBuffer(14)
	require.NoError(t, err)
	assert.Equal(t, []byte("via descriptor"), buf.Bytes())
}

func TestPipeFDHasUnknownSize(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()

	f, err := OpenReadableFD(r.Fd(), "pipe")
	require.NoError(t, err)
	defer f.Close()

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), size)

	go func() {
		w.Write([]byte("through the pipe")) //nolint:errcheck
		w.Close()
	}()

	p := make([]byte, 16)
	n, err := f.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("through the pipe"), p[:n])
}

func TestReadRanges(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	bufs, err := f.ReadRanges(context.Background(), []Range{
		{Offset: 0, Length: 3},
		{Offset: 7, Length: 3},
		{Offset: 4, Length: 2},
		{Offset: 8, Length: 100}, // shrunk at end of file
	}, 2)
	require.NoError(t, err)
	require.Len(t, bufs, 4)

	assert.Equal(t, []byte("012"), bufs[0].Bytes())
	assert.Equal(t, []byte("789"), bufs[1].Bytes())
	assert.Equal(t, []byte("45"), bufs[2].Bytes())
	assert.Equal(t, []byte("89"), bufs[3].Bytes())
}

func TestReadRangesNegative(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.ReadRanges(context.Background(), []Range{{Offset: -1, Length: 2}}, 0)
	assert.ErrorIs(t, err, stream.ErrInvalid)
}

func TestReadRangesCancelled(t *testing.T) {
	path := writeTestFile(t, []byte("0123456789"))

	f, err := OpenReadable(path)
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.ReadRanges(ctx, []Range{{Offset: 0, Length: 2}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
