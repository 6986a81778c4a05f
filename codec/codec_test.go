package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/columnio/testutil"
)

func roundTrip(t *testing.T, c Codec, payload []byte) {
	t.Helper()

	var compressed bytes.Buffer
	w, err := c.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := c.NewReader(bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Equal(t, payload, out)
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	payloads := map[string][]byte{
		"empty":        {},
		"small":        []byte("hello columnar world"),
		"compressible": rng.CompressibleBytes(256 * 1024),
		"random":       rng.RandomBytes(64 * 1024),
		"runs":         rng.RunLengthBytes(128 * 1024),
	}

	for _, c := range []Codec{Zstd(), LZ4(), Gzip(), Flate(), S2()} {
		for name, payload := range payloads {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				roundTrip(t, c, payload)
			})
		}
	}
}

func TestFlush(t *testing.T) {
	for _, c := range []Codec{Zstd(), LZ4(), Gzip(), Flate(), S2()} {
		t.Run(c.Name(), func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := c.NewWriter(&compressed)
			require.NoError(t, err)

			_, err = w.Write([]byte("partial"))
			require.NoError(t, err)
			require.NoError(t, w.Flush())

			// Flushed bytes must already decode without closing the
			// writer.
			r, err := c.NewReader(bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)
			out := make([]byte, 7)
			_, err = io.ReadFull(r, out)
			require.NoError(t, err)
			assert.Equal(t, []byte("partial"), out)

			require.NoError(t, w.Close())
		})
	}
}

func TestReaderReset(t *testing.T) {
	for _, c := range []Codec{Zstd(), LZ4(), Gzip(), Flate(), S2()} {
		t.Run(c.Name(), func(t *testing.T) {
			compress := func(p []byte) []byte {
				var buf bytes.Buffer
				w, err := c.NewWriter(&buf)
				require.NoError(t, err)
				_, err = w.Write(p)
				require.NoError(t, err)
				require.NoError(t, w.Close())
				return buf.Bytes()
			}

			first := compress([]byte("first frame"))
			second := compress([]byte("second frame"))

			r, err := c.NewReader(bytes.NewReader(first))
			require.NoError(t, err)
			out, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, []byte("first frame"), out)

			require.NoError(t, r.Reset(bytes.NewReader(second)))
			out, err = io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, []byte("second frame"), out)

			require.NoError(t, r.Close())
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"zstd", "lz4", "gzip", "flate", "s2"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("snappy-raw")
	assert.False(t, ok)
}

func TestMustByName(t *testing.T) {
	assert.Equal(t, "lz4", MustByName("lz4").Name())
	assert.Panics(t, func() {
		MustByName("nope")
	})
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "zstd", Default.Name())
}

func TestLevels(t *testing.T) {
	rng := testutil.NewRNG(4711)
	payload := rng.CompressibleBytes(64 * 1024)

	roundTrip(t, ZstdLevel(zstd.SpeedBestCompression), payload)
	roundTrip(t, GzipLevel(9), payload)
	roundTrip(t, FlateLevel(9), payload)
}
