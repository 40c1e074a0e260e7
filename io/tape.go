package io

import (
	"bufio"
	"io"
)

// Tape provides sequential byte I/O. It wraps an io.Reader for input and
// an io.Writer for output, buffering both.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	writer *bufio.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind drops buffered input and output, reattaching to Input and Output.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.writer = nil
}

func (tc *Tape) in() *bufio.Reader {
	if tc.reader == nil && tc.Input != nil {
		tc.reader = bufio.NewReader(tc.Input)
	}
	return tc.reader
}

func (tc *Tape) out() *bufio.Writer {
	if tc.writer == nil && tc.Output != nil {
		tc.writer = bufio.NewWriter(tc.Output)
	}
	return tc.writer
}

// ReadByte reads a byte from the input stream.
func (tc *Tape) ReadByte() (value byte, err error) {
	in := tc.in()
	if in == nil {
		err = ErrNoInput
		return
	}

	// Pending output is flushed so prompts appear before input is read.
	if tc.writer != nil {
		tc.writer.Flush()
	}

	return in.ReadByte()
}

// UnreadByte pushes back the last byte read.
func (tc *Tape) UnreadByte() error {
	in := tc.in()
	if in == nil {
		return ErrNoInput
	}
	return in.UnreadByte()
}

// Write sends bytes to the output stream.
func (tc *Tape) Write(p []byte) (n int, err error) {
	out := tc.out()
	if out == nil {
		err = ErrNoOutput
		return
	}

	return out.Write(p)
}

// Flush writes any buffered output.
func (tc *Tape) Flush() (err error) {
	if tc.writer != nil {
		err = tc.writer.Flush()
	}
	return
}
