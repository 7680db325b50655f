// Package testutil provides testing utilities for searchlight.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for item arrays, DSMs and sensor
// layouts.
//
// # Random Arrays
//
//	rng := testutil.NewRNG(seed)
//	x := rng.UniformArray(10, 4, 50)  // items x series x times in [0, 1)
//	g := rng.GaussianArray(10, 4, 50) // standard normal
//
// # Layouts and DSMs
//
//	dist := testutil.LineDistances(4)  // |i-j| between series on a line
//	sq := rng.SymmetricDSM(6)         // random square DSM, zero diagonal
package testutil
