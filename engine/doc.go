// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package engine executes funge programs one instruction at a time.
//
// An Engine owns the funge-space and the I/O endpoints. Each call to Tick
// runs a single instruction for one IP: the IP first slides over spaces
// and ;comments; at no cost, then the cell under it is dispatched, then
// the IP moves on by its delta, wrapping at the edge of the space.
//
// Nothing in dispatch fails outward. Stack underflow pops zeros, division
// by zero yields zero, and any instruction that cannot act (unknown cells,
// I/O failures, directions the dialect lacks) reflects the IP instead.
//
// Letters A to Z are looked up in the IP's Alphabet, which holds the
// fingerprints loaded with the ( instruction.
package engine
