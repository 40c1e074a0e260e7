// Package io provides the character and file endpoints used by the funge
// engine: a byte-level Tape for the input and output instructions, and
// file systems for the file instructions.
package io

// Channel defines the byte stream the engine reads and writes.
// A read or write failure is never fatal to the engine; it reflects the IP.
type Channel interface {
	// ReadByte reads the next input byte.
	ReadByte() (byte, error)
	// UnreadByte pushes back the last byte read.
	UnreadByte() error
	// Write sends output bytes.
	Write(p []byte) (int, error)
	// Flush forces any buffered output out.
	Flush() error
}
