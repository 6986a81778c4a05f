package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomBytes(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.RandomBytes(1024)

	assert.Equal(t, 1024, len(b))
}

func TestCompressibleBytes(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.CompressibleBytes(1024)

	assert.Equal(t, 1024, len(b))
}

func TestRunLengthBytes(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.RunLengthBytes(4096)

	assert.Equal(t, 4096, len(b))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	b1 := rng.RandomBytes(64)

	rng.Reset()
	b2 := rng.RandomBytes(64)

	assert.Equal(t, b1, b2)
}

func TestSeed(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())
}
