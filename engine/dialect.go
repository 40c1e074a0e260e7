package engine

import (
	"strings"

	"github.com/ezrec/funge/space"
)

// Dialect selects the language variant, and so the dimension of the
// space and the instructions available.
type Dialect int

const (
	DIALECT_BEFUNGE_98  = Dialect(0) // Befunge-98, two dimensions.
	DIALECT_BEFUNGE_93  = Dialect(1) // Befunge-93, an 80x25 torus.
	DIALECT_UNEFUNGE_98 = Dialect(2) // Unefunge-98, one dimension.
	DIALECT_TREFUNGE_98 = Dialect(3) // Trefunge-98, three dimensions.
)

// TORUS_SIZE is the size of the Befunge-93 playfield.
var TORUS_SIZE = space.Vec(80, 25)

var dialectName = map[Dialect]string{
	DIALECT_BEFUNGE_98:  "befunge98",
	DIALECT_BEFUNGE_93:  "befunge93",
	DIALECT_UNEFUNGE_98: "unefunge98",
	DIALECT_TREFUNGE_98: "trefunge98",
}

// ParseDialect parses a dialect name, ignoring case.
func ParseDialect(name string) (dialect Dialect, err error) {
	name = strings.ToLower(name)
	for dialect, text := range dialectName {
		if text == name {
			return dialect, nil
		}
	}

	err = ErrDialectUnknown
	return
}

// String returns the dialect name.
func (dialect Dialect) String() string {
	text, ok := dialectName[dialect]
	if !ok {
		return "unknown"
	}
	return text
}

// Dimension is the number of dimensions of the dialect's space.
func (dialect Dialect) Dimension() space.Dimension {
	switch dialect {
	case DIALECT_UNEFUNGE_98:
		return space.DIM_1
	case DIALECT_TREFUNGE_98:
		return space.DIM_3
	default:
		return space.DIM_2
	}
}

// Is93 is true for the Befunge-93 dialect.
func (dialect Dialect) Is93() bool {
	return dialect == DIALECT_BEFUNGE_93
}
