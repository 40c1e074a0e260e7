// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interpreter runs funge programs: it owns the engine, loads
// source, and schedules the IPs.
package interpreter

import (
	"context"
	"math/rand"
	"os"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/funge/engine"
	"github.com/ezrec/funge/fingerprint"
	fungeio "github.com/ezrec/funge/io"
	"github.com/ezrec/funge/loader"
	"github.com/ezrec/funge/space"
)

// Interpreter state. Engine + IPs + character I/O.
type Interpreter struct {
	Verbose        bool // If set, enables verbose logging.
	*engine.Engine      // Reference to the engine.

	Tape fungeio.Tape // Character I/O.
	IPs  []*engine.IP // Live IPs, in scheduling order.
}

// New creates an interpreter from a configuration.
func New(cfg Config) (in *Interpreter, err error) {
	dialect := engine.DIALECT_BEFUNGE_98
	if cfg.Dialect != "" {
		dialect, err = engine.ParseDialect(cfg.Dialect)
		if err != nil {
			err = &ErrConfig{Err: err}
			return
		}
	}

	eng := engine.NewEngine(dialect)
	eng.Verbose = cfg.Verbose
	eng.Buffered = cfg.Buffered
	eng.StrictStrings = cfg.StrictStrings
	eng.Environment = NewEnvironment(cfg.Args, cfg.Environ)
	if cfg.Seed != 0 {
		eng.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	if cfg.Root != "" {
		eng.Files = fungeio.DirFS(cfg.Root)
	}

	fingerprint.Standard(eng.Registry)
	for _, path := range cfg.Fingerprints {
		_, err = fingerprint.LoadScript(eng.Registry, path, nil)
		if err != nil {
			err = &ErrConfig{Err: err}
			return
		}
	}

	in = &Interpreter{
		Verbose: cfg.Verbose,
		Engine:  eng,
	}
	eng.Tape = &in.Tape

	in.Reset()

	return
}

// Reset clears the space and starts over with a single IP.
func (in *Interpreter) Reset() {
	in.Engine.Verbose = in.Verbose
	in.Engine.Space.Verbose = in.Verbose

	in.Engine.Reset()
	in.Tape.Rewind()
	in.IPs = []*engine.IP{in.Engine.NewIP()}
}

// Load places a code buffer at the origin.
func (in *Interpreter) Load(buf *loader.Buffer) space.Vector {
	return in.LoadAt(buf, space.ORIGIN)
}

// LoadAt places a code buffer with its first cell at origin, returning
// its size.
func (in *Interpreter) LoadAt(buf *loader.Buffer, origin space.Vector) space.Vector {
	return in.Engine.Load(buf, origin)
}

// LoadFile reads and places a source file at the origin. Befunge-93
// source is read as bytes.
func (in *Interpreter) LoadFile(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer file.Close()

	buf, err := loader.Decode(file, loader.Options{
		Dimension: in.Dimension(),
		Bytes:     in.Dialect.Is93(),
	})
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}

	size := in.Load(buf)
	if in.Verbose {
		log.Debug().Str("path", path).Stringer("size", size).Msg("interpreter: load")
	}

	return
}

// Round gives each live IP one tick, in order. IPs created by t join the
// list ahead of their parent and first run in the next round. done is true
// once no IPs remain or the program quit.
func (in *Interpreter) Round() (done bool) {
	for n := 0; n < len(in.IPs); {
		state, spawned := in.Engine.Tick(in.IPs[n])
		if state == engine.STATE_QUIT {
			if in.Verbose {
				code, _ := in.Engine.ExitCode()
				log.Trace().Int32("ip", in.IPs[n].Id).Int32("code", code).Msg("interpreter: quit")
			}
			in.IPs = nil
			return true
		}

		in.IPs = slices.Insert(in.IPs, n, spawned...)
		n += len(spawned)

		if state == engine.STATE_STOPPED {
			if in.Verbose {
				log.Trace().Int32("ip", in.IPs[n].Id).Msg("interpreter: stop")
			}
			in.IPs = slices.Delete(in.IPs, n, n+1)
			continue
		}
		n++
	}

	return len(in.IPs) == 0
}

// Run executes rounds until the program ends or ctx is done. The exit
// code, if the program quit, is then available from ExitCode. Output still
// buffered at the end is flushed; a failure there is logged, as the program
// can no longer reflect on it.
func (in *Interpreter) Run(ctx context.Context) (err error) {
	in.Engine.Done = ctx.Done()
	defer func() {
		in.Engine.Done = nil
		ferr := in.Tape.Flush()
		if ferr != nil {
			log.Warn().Err(ferr).Msg("interpreter: output")
		}
	}()

	for !in.Round() {
		err = ctx.Err()
		if err != nil {
			return
		}
	}

	if in.Verbose {
		log.Debug().Int("ticks", in.Ticks).Msg("interpreter: done")
	}

	return
}
