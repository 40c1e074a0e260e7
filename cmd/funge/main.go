// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/ezrec/funge/interpreter"
)

type stringList []string

func (list *stringList) String() string {
	return fmt.Sprint(*list)
}

func (list *stringList) Set(value string) error {
	*list = append(*list, value)
	return nil
}

func run() int {
	var dialect string
	var config string
	var root string
	var input string
	var output string
	var seed int64
	var strict bool
	var buffered bool
	var verbose bool
	var fingerprints stringList

	flag.StringVar(&dialect, "d", "", "Dialect (befunge93, befunge98, unefunge98, trefunge98)")
	flag.StringVar(&config, "c", "", "YAML configuration file")
	flag.StringVar(&root, "r", "", "Directory for i and o file access")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.Int64Var(&seed, "s", 0, "Random seed")
	flag.BoolVar(&strict, "S", false, "Push every space in string mode")
	flag.BoolVar(&buffered, "b", false, "Buffer output; write failures surface late")
	flag.Var(&fingerprints, "f", "Starlark fingerprint script (repeatable)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	if flag.NArg() == 0 {
		log.Fatal().Msgf("%v: no program given", os.Args[0])
	}
	path := flag.Arg(0)

	cfg := interpreter.Config{}
	if len(config) != 0 {
		inf, err := os.Open(config)
		if err != nil {
			log.Fatal().Err(err).Str("path", config).Msg("config")
		}
		cfg, err = interpreter.LoadConfig(inf)
		inf.Close()
		if err != nil {
			log.Fatal().Err(err).Str("path", config).Msg("config")
		}
	}

	// Flags override the configuration file.
	if len(dialect) != 0 {
		cfg.Dialect = dialect
	}
	if len(cfg.Dialect) == 0 {
		cfg.Dialect = interpreter.DialectOf(path).String()
	}
	if len(root) != 0 {
		cfg.Root = root
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	cfg.Verbose = cfg.Verbose || verbose
	cfg.StrictStrings = cfg.StrictStrings || strict
	cfg.Buffered = cfg.Buffered || buffered
	cfg.Fingerprints = append(cfg.Fingerprints, fingerprints...)
	if len(cfg.Args) == 0 {
		cfg.Args = flag.Args()
	}
	if len(cfg.Environ) == 0 {
		cfg.Environ = os.Environ()
	}

	in, err := interpreter.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("setup")
	}

	if input == "-" {
		in.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatal().Err(err).Str("path", input).Msg("input")
		}
		defer inf.Close()
		in.Tape.Input = inf
	}

	if output == "-" {
		in.Tape.Output = os.Stdout
		// Interactive output is never held back.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			in.Engine.Buffered = false
		}
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatal().Err(err).Str("path", output).Msg("output")
		}
		defer ouf.Close()
		in.Tape.Output = ouf
	}

	err = in.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("load")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = in.Run(ctx)
	if err != nil {
		log.Error().Err(err).Stringer("dialect", in.Dialect).Int("ticks", in.Ticks).Msg("run")
		return 1
	}

	code, _ := in.ExitCode()
	return int(code)
}

func main() {
	os.Exit(run())
}
