package testutil

import (
	"bytes"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random int64 in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Fill fills dst with pseudo-random bytes.
// Locks only once per call (preferred over byte-at-a-time draws).
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(dst) //nolint:errcheck // never fails
}

// RandomBytes returns n pseudo-random bytes. High entropy, so codecs
// cannot shrink it; useful for worst-case compression paths.
func (r *RNG) RandomBytes(n int) []byte {
	dst := make([]byte, n)
	r.Fill(dst)
	return dst
}

// CompressibleBytes returns n bytes built from a small repeated
// vocabulary, so every codec achieves a solid ratio on it.
func (r *RNG) CompressibleBytes(n int) []byte {
	words := []string{"alpha ", "beta ", "gamma ", "delta ", "epsilon "}
	var buf bytes.Buffer
	buf.Grow(n + 16)

	r.mu.Lock()
	for buf.Len() < n {
		buf.WriteString(words[r.rand.Intn(len(words))])
	}
	r.mu.Unlock()

	return buf.Bytes()[:n]
}

// RunLengthBytes returns n bytes of runs with pseudo-random lengths,
// the best case for dictionary and run-length style codecs.
func (r *RNG) RunLengthBytes(n int) []byte {
	dst := make([]byte, n)

	r.mu.Lock()
	i := 0
	for i < n {
		run := 16 + r.rand.Intn(240)
		if i+run > n {
			run = n - i
		}
		b := byte(r.rand.Intn(256))
		for j := 0; j < run; j++ {
			dst[i+j] = b
		}
		i += run
	}
	r.mu.Unlock()

	return dst
}
