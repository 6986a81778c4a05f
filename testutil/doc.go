// Package testutil provides testing utilities for columnio.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random number generator and
// helpers for generating byte payloads with known entropy profiles.
//
// # Random Payload Generation
//
//	rng := testutil.NewRNG(seed)
//	raw := rng.RandomBytes(1 << 20)        // incompressible
//	txt := rng.CompressibleBytes(1 << 20)  // compresses well
package testutil
