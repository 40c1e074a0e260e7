// Package space implements funge-space for the Funge family of languages.
//
// Funge-space is an unbounded, sparse grid of 32-bit cells addressed by
// one, two or three dimensional vectors. Storage is split into fixed size
// hyper-cubic pages that are only allocated when a cell inside them is
// written; reads of unallocated pages return the space character.
//
// All vector arithmetic wraps silently on overflow, as funge cells do.
package space
