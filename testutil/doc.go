// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Coordinates
//
//	rng := testutil.NewRNG(seed)
//	dim := rng.Dimension(16)                 // [1, 16]
//	coords := rng.UniformRangeVectors(100, dim) // values in [-1, 1)
//	unit := rng.UnitVector(dim)
package testutil
