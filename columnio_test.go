package columnio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnio/codec"
	"github.com/hupe1980/columnio/stream"
	"github.com/hupe1980/columnio/testutil"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.bin")

	out, err := OpenOutput(path, false)
	require.NoError(t, err)
	_, err = out.Write([]byte("columnar payload"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	in, err := OpenInput(path)
	require.NoError(t, err)
	defer in.Close()

	buf, err := in.ReadBufferAt(9, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), buf.Bytes())
}

func TestCompressedRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	payload := rng.CompressibleBytes(1 << 20)

	for _, name := range []string{"zstd", "lz4", "gzip", "flate", "s2"} {
		t.Run(name, func(t *testing.T) {
			c := codec.MustByName(name)
			path := filepath.Join(t.TempDir(), "data."+name)

			out, err := OpenOutput(path, false)
			require.NoError(t, err)
			cw, err := NewCompressedOutput(c, out)
			require.NoError(t, err)
			_, err = cw.Write(payload)
			require.NoError(t, err)
			require.NoError(t, cw.Close())
			assert.True(t, out.Closed())

			// Compressible input must actually shrink on disk.
			fi, err := os.Stat(path)
			require.NoError(t, err)
			assert.Less(t, fi.Size(), int64(len(payload)))

			in, err := OpenInput(path)
			require.NoError(t, err)
			cr, err := NewCompressedInput(c, in)
			require.NoError(t, err)

			got := make([]byte, 0, len(payload))
			p := make([]byte, 64*1024)
			for {
				n, err := cr.Read(p)
				require.NoError(t, err)
				if n == 0 {
					break
				}
				got = append(got, p[:n]...)
			}
			require.NoError(t, cr.Close())
			assert.Equal(t, payload, got)
		})
	}
}

func TestMemoryMapRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapped.bin")

	m, err := CreateMemoryMap(path, 32)
	require.NoError(t, err)
	_, err = m.Write([]byte("written through the mapping"))
	require.NoError(t, err)
	require.NoError(t, m.Close())

	r, err := OpenMemoryMap(path, stream.ModeRead)
	require.NoError(t, err)
	defer r.Close()

	buf, err := r.ReadBufferAt(0, 27)
	require.NoError(t, err)
	assert.Equal(t, []byte("written through the mapping"), buf.Bytes())
	buf.Release()
}

func TestCompressedIntoMemoryMap(t *testing.T) {
	rng := testutil.NewRNG(4711)
	payload := rng.CompressibleBytes(256 * 1024)
	path := filepath.Join(t.TempDir(), "data.zst")

	out, err := OpenOutput(path, false)
	require.NoError(t, err)
	cw, err := NewCompressedOutput(codec.Default, out)
	require.NoError(t, err)
	_, err = cw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, cw.Close())

	// Decompress straight out of the mapping.
	m, err := OpenMemoryMap(path, stream.ModeRead)
	require.NoError(t, err)
	cr, err := NewCompressedInput(codec.Default, m)
	require.NoError(t, err)

	got := make([]byte, 0, len(payload))
	p := make([]byte, 64*1024)
	for {
		n, err := cr.Read(p)
		require.NoError(t, err)
		if n == 0 {
			break
		}
		got = append(got, p[:n]...)
	}
	require.NoError(t, cr.Close())
	assert.Equal(t, payload, got)
}

func TestGrowEmptyMapAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grown.bin")

	m, err := CreateMemoryMap(path, 0)
	require.NoError(t, err)
	require.NoError(t, m.Resize(10))
	_, err = m.WriteAt([]byte("0123456789"), 0)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	r, err := OpenMemoryMap(path, stream.ModeRead)
	require.NoError(t, err)
	defer r.Close()

	p := make([]byte, 10)
	n, err := r.ReadAt(p, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), p[:n])
}

func TestStreamKinds(t *testing.T) {
	dir := t.TempDir()

	out, err := OpenOutput(filepath.Join(dir, "a.bin"), false)
	require.NoError(t, err)
	defer out.Close()
	assert.Equal(t, stream.KindFile, out.Kind())

	m, err := CreateMemoryMap(filepath.Join(dir, "b.bin"), 4)
	require.NoError(t, err)
	defer m.Close()
	assert.Equal(t, stream.KindMemory, m.Kind())
}

func TestSetLogger(t *testing.T) {
	SetLogger(NoopLogger())
	defer SetLogger(nil)
}

func TestErrorKindsExported(t *testing.T) {
	assert.ErrorIs(t, stream.ErrClosed, ErrClosed)
	assert.ErrorIs(t, stream.ErrInvalid, ErrInvalid)
	assert.ErrorIs(t, stream.ErrIO, ErrIO)
}
