// Package loader decodes funge source text into a code buffer: an ordered
// list of lines, each ending in a row, plane or end terminator.
package loader

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/ezrec/funge/space"
)

// Terminator ends a line of a code buffer, advancing to the next row or
// plane, or stopping the load.
type Terminator int

//go:generate go tool stringer -linecomment -type=Terminator
const (
	TERM_ROW   = Terminator(0) // row
	TERM_PLANE = Terminator(1) // plane
	TERM_END   = Terminator(2) // end
)

// Line is a sequence of codepoints and its terminator.
type Line struct {
	Data       []int32
	Terminator Terminator
}

// Buffer is a decoded source file.
type Buffer struct {
	Lines []Line
}

// Options controls decoding.
type Options struct {
	Dimension space.Dimension // Dimensionality of the target space.
	Bytes     bool            // Read bytes, not UTF-8 codepoints.
}

// Decode reads all of r into a code buffer.
func Decode(r io.Reader, opts Options) (buf *Buffer, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	buf = DecodeBytes(data, opts)
	return
}

// DecodeString decodes source text held in a string.
func DecodeString(text string, opts Options) *Buffer {
	return DecodeBytes([]byte(text), opts)
}

// DecodeBytes decodes source text.
//
// LF, CR and CRLF end a row. A form feed ends a plane in three dimensions
// and is dropped otherwise. A one dimensional buffer is a single line, with
// line breaks dropped.
func DecodeBytes(data []byte, opts Options) (buf *Buffer) {
	buf = &Buffer{}
	line := Line{}

	end := func(term Terminator) {
		line.Terminator = term
		buf.Lines = append(buf.Lines, line)
		line = Line{}
	}

	for len(data) > 0 {
		var c rune
		size := 1
		if opts.Bytes {
			c = rune(data[0])
		} else {
			c, size = utf8.DecodeRune(data)
		}
		data = data[size:]

		switch c {
		case '\r':
			if len(data) > 0 && data[0] == '\n' {
				data = data[1:]
			}
			fallthrough
		case '\n':
			if opts.Dimension != space.DIM_1 {
				end(TERM_ROW)
			}
		case '\f':
			if opts.Dimension == space.DIM_3 {
				end(TERM_PLANE)
			}
		default:
			line.Data = append(line.Data, int32(c))
		}
	}

	end(TERM_END)

	return
}

// Size returns the extent of the buffer: the longest line, the number of
// rows in the tallest plane and the number of planes. A trailing empty line
// does not count.
func (buf *Buffer) Size() (size space.Vector) {
	row := int32(0)
	plane := int32(0)
	for _, line := range buf.Lines {
		if line.Terminator == TERM_END && len(line.Data) == 0 {
			break
		}
		size[0] = max(size[0], int32(len(line.Data)))
		size[1] = max(size[1], row+1)
		size[2] = max(size[2], plane+1)
		switch line.Terminator {
		case TERM_ROW:
			row++
		case TERM_PLANE:
			plane++
			row = 0
		case TERM_END:
			return
		}
	}
	return
}

// String renders the buffer back to text.
func (buf *Buffer) String() string {
	var text bytes.Buffer
	for _, line := range buf.Lines {
		for _, c := range line.Data {
			text.WriteRune(rune(c))
		}
		switch line.Terminator {
		case TERM_ROW:
			text.WriteByte('\n')
		case TERM_PLANE:
			text.WriteByte('\f')
		}
	}
	return text.String()
}
