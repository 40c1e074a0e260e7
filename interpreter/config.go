package interpreter

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/funge/engine"
)

// Config describes an interpreter.
type Config struct {
	Dialect       string   `yaml:"dialect"`        // Dialect name; empty infers from the source.
	Verbose       bool     `yaml:"verbose"`        // Trace every tick.
	Seed          int64    `yaml:"seed"`           // Seed for ?; zero seeds from the clock.
	Fingerprints  []string `yaml:"fingerprints"`   // Starlark fingerprint scripts.
	Buffered      bool     `yaml:"buffered"`       // Hold output between instructions.
	StrictStrings bool     `yaml:"strict_strings"` // Push spaces in string mode.
	Args          []string `yaml:"args"`           // Program arguments, reported by y.
	Environ       []string `yaml:"environ"`        // Environment, reported by y.
	Root          string   `yaml:"root"`           // Directory for i and o; empty disables them.
}

// LoadConfig decodes a YAML configuration. Unknown keys are errors.
func LoadConfig(r io.Reader) (cfg Config, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		err = &ErrConfig{Err: err}
	}

	return
}

var dialectSuffix = map[string]engine.Dialect{
	".b93": engine.DIALECT_BEFUNGE_93,
	".bf":  engine.DIALECT_BEFUNGE_98,
	".b98": engine.DIALECT_BEFUNGE_98,
	".uf":  engine.DIALECT_UNEFUNGE_98,
	".u98": engine.DIALECT_UNEFUNGE_98,
	".tf":  engine.DIALECT_TREFUNGE_98,
	".t98": engine.DIALECT_TREFUNGE_98,
}

// DialectOf infers the dialect from a file name, defaulting to Befunge-98.
func DialectOf(path string) engine.Dialect {
	dialect, ok := dialectSuffix[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return engine.DIALECT_BEFUNGE_98
	}
	return dialect
}

// NewEnvironment builds the sysinfo blocks: each argument null terminated
// followed by a final null, and likewise each name=value entry.
func NewEnvironment(args []string, environ []string) (env engine.Environment) {
	block := func(entries []string) (data []byte) {
		for _, entry := range entries {
			data = append(data, entry...)
			data = append(data, 0)
		}
		return append(data, 0)
	}

	env.Args = block(args)
	if len(args) == 0 {
		env.Args = append(env.Args, 0)
	}
	env.Env = block(environ)

	return
}
