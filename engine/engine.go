// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	fungeio "github.com/ezrec/funge/io"
	"github.com/ezrec/funge/loader"
	"github.com/ezrec/funge/space"
	"github.com/ezrec/funge/stack"
)

const (
	HANDPRINT = int32(0x474f464e) // "GOFN"
	VERSION   = int32(100)        // Reported by sysinfo.

	ITERATE_POLL = 4096 // Repeats of k between checks of Done.
)

// State is the outcome of a tick: the IP continues, it executed @ and is
// gone, or the program executed q.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_STOPPED = State(1) // stopped
	STATE_QUIT    = State(2) // quit
)

// Environment holds the blocks reported by sysinfo.
type Environment struct {
	Args []byte // Null terminated arguments, then a final null.
	Env  []byte // Null terminated name=value entries, then a final null.
}

// Engine executes instructions against a funge-space.
type Engine struct {
	Verbose bool // Set to trace every tick.

	Dialect  Dialect      // Language variant.
	Space    *space.Space // Program and data.
	Registry *Registry    // Fingerprints available to (.

	Tape        fungeio.Channel    // Character input and output.
	Files       fungeio.FileSystem // Files for i and o. May be nil.
	Environment Environment        // Reported by y.

	Rand *rand.Rand       // Source for ?.
	Now  func() time.Time // Clock for y.

	Buffered      bool // Leave output in the tape's buffer between instructions.
	StrictStrings bool // Push spaces in string mode.

	Done <-chan struct{} // Closed to abandon a long running k.

	Ticks int // Instructions executed.

	nextId   int32
	exitCode int32
	quit     bool

	state   State
	spawned []*IP
}

// NewEngine creates an engine with an empty space for the dialect.
func NewEngine(dialect Dialect) (eng *Engine) {
	eng = &Engine{
		Dialect:  dialect,
		Space:    space.NewSpace(dialect.Dimension()),
		Registry: NewRegistry(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:      time.Now,
	}

	return
}

// Dimension of the space.
func (eng *Engine) Dimension() space.Dimension {
	return eng.Dialect.Dimension()
}

// Reset clears the space and counters.
func (eng *Engine) Reset() {
	if eng.Verbose {
		log.Trace().Stringer("dialect", eng.Dialect).Msg("engine: reset")
	}

	eng.Space.Reset()
	eng.Ticks = 0
	eng.nextId = 0
	eng.exitCode = 0
	eng.quit = false
}

// ExitCode returns the code given to q. ok is false if q never ran.
func (eng *Engine) ExitCode() (code int32, ok bool) {
	return eng.exitCode, eng.quit
}

// interrupted reports whether Done has been closed.
func (eng *Engine) interrupted() bool {
	select {
	case <-eng.Done:
		return true
	default:
		return false
	}
}

// NewIP creates an IP at the origin heading east.
func (eng *Engine) NewIP() (ip *IP) {
	ip = &IP{
		Id:     eng.nextId,
		Delta:  space.EAST,
		Stacks: stack.NewStackStack(),
	}
	eng.nextId++

	return
}

// Next returns the cell after pos along delta, wrapping at the edge of
// the space.
func (eng *Engine) Next(pos space.Vector, delta space.Vector) space.Vector {
	if eng.Dialect.Is93() {
		return space.Torus(pos, delta, TORUS_SIZE)
	}
	return eng.Space.Wrap(pos, delta)
}

// enter is Next for an IP that may have left the bounding box. It returns
// false if the line of travel never meets anything written.
func (eng *Engine) enter(pos space.Vector, delta space.Vector) (space.Vector, bool) {
	if eng.Dialect.Is93() {
		return space.Torus(pos, delta, TORUS_SIZE), true
	}
	return eng.Space.Enter(pos, delta)
}

// seek finds the first cell from pos, along delta, that is neither a space
// nor, when comments is set, inside a ;comment;. ok is false when the line
// of travel holds nothing else.
func (eng *Engine) seek(pos space.Vector, delta space.Vector, comments bool) (space.Vector, bool) {
	var mark space.Vector
	marked := false
	laps := 0
	comment := false

	for {
		cell := eng.Space.Get(pos)
		switch {
		case comment:
			comment = cell != ';'
		case comments && cell == ';':
			comment = true
		case cell == space.SPACE:
		default:
			return pos, true
		}

		next, ok := eng.enter(pos, delta)
		if !ok {
			return pos, false
		}
		pos = next

		// The path through the box is a cycle. Two laps cover both
		// states of the comment flag.
		if !marked {
			mark = pos
			marked = true
		} else if pos == mark {
			laps++
			if laps == 2 {
				return pos, false
			}
		}
	}
}

// Tick executes one instruction of ip. Any IPs created by t are returned
// for the scheduler to insert before ip.
func (eng *Engine) Tick(ip *IP) (state State, spawned []*IP) {
	eng.state = STATE_RUNNING
	eng.spawned = nil

	if ip.StringMode {
		eng.tickString(ip)
	} else {
		eng.tickNormal(ip)
	}

	return eng.state, eng.spawned
}

func (eng *Engine) tickNormal(ip *IP) {
	pos, ok := eng.seek(ip.Position, ip.Delta, !eng.Dialect.Is93())
	if !ok {
		if eng.Verbose {
			log.Trace().Int32("ip", ip.Id).Stringer("pos", ip.Position).Msg("engine: nothing to execute")
		}
		return
	}

	ip.Position = pos
	cell := eng.Space.Get(pos)
	eng.Ticks++

	if eng.Verbose {
		log.Trace().Int32("ip", ip.Id).
			Stringer("pos", ip.Position).
			Stringer("delta", ip.Delta).
			Str("op", string(rune(cell))).
			Int("depth", ip.Stacks.Top().Depth()).
			Msg("engine: tick")
	}

	if !eng.Execute(ip, cell) {
		ip.Reflect()
	}

	if eng.state == STATE_RUNNING {
		ip.Position = eng.Next(ip.Position, ip.Delta)
	}
}

// tickString pushes the cell under the IP. Runs of spaces are passed over
// at no cost; with StrictStrings a run pushes one space, or every space
// for Befunge-93.
func (eng *Engine) tickString(ip *IP) {
	toss := ip.Stacks.Top()
	cell := eng.Space.Get(ip.Position)

	switch {
	case cell == '"':
		ip.StringMode = false
		eng.Ticks++
	case cell == space.SPACE && eng.StrictStrings && eng.Dialect.Is93():
		toss.Push(cell)
		eng.Ticks++
	case cell == space.SPACE:
		pos, ok := eng.seek(ip.Position, ip.Delta, false)
		if !ok {
			return
		}
		if eng.StrictStrings {
			toss.Push(cell)
			eng.Ticks++
		}
		ip.Position = pos
		return
	default:
		toss.Push(cell)
		eng.Ticks++
	}

	ip.Position = eng.Next(ip.Position, ip.Delta)
}

// Load writes a code buffer into the space with its first cell at origin.
// Spaces in the buffer leave the space untouched. Returns the size of the
// buffer.
func (eng *Engine) Load(buf *loader.Buffer, origin space.Vector) (size space.Vector) {
	dim := eng.Dimension()
	origin = origin.Mask(dim)
	pos := origin

	if eng.Verbose {
		log.Trace().Stringer("origin", origin).Int("lines", len(buf.Lines)).Msg("engine: load")
	}

	for _, line := range buf.Lines {
		for n, c := range line.Data {
			if c == space.SPACE {
				continue
			}
			at := pos
			at[0] += int32(n)
			if eng.Dialect.Is93() && !inTorus(at) {
				continue
			}
			eng.Space.Put(at, c)
		}

		switch line.Terminator {
		case loader.TERM_ROW:
			if dim == space.DIM_1 {
				pos[0] += int32(len(line.Data))
				continue
			}
			pos[0] = origin[0]
			pos[1]++
		case loader.TERM_PLANE:
			pos[0] = origin[0]
			pos[1] = origin[1]
			if dim == space.DIM_3 {
				pos[2]++
			}
		case loader.TERM_END:
			return buf.Size().Mask(dim)
		}
	}

	return buf.Size().Mask(dim)
}

func inTorus(at space.Vector) bool {
	return at[0] >= 0 && at[0] < TORUS_SIZE[0] && at[1] >= 0 && at[1] < TORUS_SIZE[1]
}
