package engine

import (
	"bytes"
	"io/fs"
	"path"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/funge/loader"
	"github.com/ezrec/funge/space"
)

const (
	FILE_FLAG_BINARY = int32(1) // i: store line breaks as cells.
	FILE_FLAG_TEXT   = int32(1) // o: trim trailing spaces and blank lines.
)

// input executes i: load a file into the space.
func (eng *Engine) input(ip *IP) bool {
	dim := eng.Dimension()
	toss := ip.Stacks.Top()

	name := path.Clean(toss.PopString())
	flags := toss.Pop()
	origin := toss.PopVector(dim).Add(ip.Offset)

	if eng.Files == nil {
		return false
	}

	data, err := fs.ReadFile(eng.Files, name)
	if err != nil {
		if eng.Verbose {
			log.Trace().Err(err).Str("file", name).Msg("engine: input")
		}
		return false
	}

	var buf *loader.Buffer
	if flags&FILE_FLAG_BINARY != 0 {
		line := loader.Line{Terminator: loader.TERM_END}
		for _, c := range data {
			line.Data = append(line.Data, int32(c))
		}
		buf = &loader.Buffer{Lines: []loader.Line{line}}
	} else {
		buf = loader.DecodeBytes(data, loader.Options{Dimension: dim, Bytes: true})
	}

	size := eng.Load(buf, origin)
	toss.PushVector(size, dim)
	toss.PushVector(origin, dim)

	return true
}

// output executes o: write a box of the space to a file.
func (eng *Engine) output(ip *IP) bool {
	dim := eng.Dimension()
	toss := ip.Stacks.Top()

	name := path.Clean(toss.PopString())
	flags := toss.Pop()
	origin := toss.PopVector(dim).Add(ip.Offset)
	size := toss.PopVector(dim)

	if eng.Files == nil {
		return false
	}
	for n := range int(dim) {
		if size[n] <= 0 {
			return false
		}
	}

	data := eng.Extract(origin, size, flags&FILE_FLAG_TEXT != 0)

	file, err := eng.Files.Create(name)
	if err == nil {
		_, err = file.Write(data)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		if eng.Verbose {
			log.Trace().Err(err).Str("file", name).Msg("engine: output")
		}
		return false
	}

	return true
}

// Extract renders a box of the space as bytes. Rows end in a newline and
// planes are separated by a form feed. As text, trailing spaces on each
// row and trailing blank rows are dropped.
func (eng *Engine) Extract(origin space.Vector, size space.Vector, text bool) []byte {
	dim := eng.Dimension()
	size = size.Mask(dim)
	for n := int(dim); n < len(size); n++ {
		size[n] = 1
	}

	var out bytes.Buffer
	for z := range size[2] {
		if z > 0 {
			out.WriteByte('\f')
		}

		var rows [][]byte
		for y := range size[1] {
			row := make([]byte, 0, size[0])
			for x := range size[0] {
				at := origin.Add(space.Vec(x, y, z))
				row = append(row, byte(eng.Space.Get(at)))
			}
			if text {
				row = bytes.TrimRight(row, " ")
			}
			rows = append(rows, row)
		}

		if text {
			for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
				rows = rows[:len(rows)-1]
			}
		}

		for _, row := range rows {
			out.Write(row)
			if dim > space.DIM_1 {
				out.WriteByte('\n')
			}
		}
	}

	return out.Bytes()
}
