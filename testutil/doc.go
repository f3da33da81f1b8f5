// Package testutil provides testing utilities for vecmap.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, reproducible random source and helpers for generating
// the duplicate-laden key and entry slices the container tests feed into
// bulk construction.
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.DupUint64s(1024, 256) // 1024 draws from a 256-key space
package testutil
