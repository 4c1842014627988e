// Package testutil provides testing utilities for fastcrc.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(1000)
//
// # Reference CRC
//
// Bitwise computes a CRC one bit at a time straight from the Rocksoft
// parameters. It is slow and obviously correct, which makes it the oracle
// for the table-driven and peripheral paths.
//
//	want := testutil.Bitwise(testutil.Params{Width: 16, Poly: 0x1021, Init: 0xFFFF}, data)
package testutil
