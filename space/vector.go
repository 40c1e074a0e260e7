package space

import (
	"fmt"
	"strings"
)

// Dimension is the number of active vector components.
type Dimension int

const (
	DIM_1 = Dimension(1) // Unefunge
	DIM_2 = Dimension(2) // Befunge
	DIM_3 = Dimension(3) // Trefunge
)

// String returns the dimension as "1d", "2d" or "3d".
func (dim Dimension) String() string {
	return fmt.Sprintf("%dd", int(dim))
}

// Vector is an address or delta in funge-space.
// Components beyond the active dimension are kept at zero.
type Vector [3]int32

// Cardinal deltas.
var (
	ORIGIN = Vector{0, 0, 0}
	EAST   = Vector{1, 0, 0}
	WEST   = Vector{-1, 0, 0}
	NORTH  = Vector{0, -1, 0}
	SOUTH  = Vector{0, 1, 0}
	HIGH   = Vector{0, 0, 1}
	LOW    = Vector{0, 0, -1}
)

// Vec makes a vector from up to three components.
func Vec(components ...int32) (v Vector) {
	copy(v[:], components)
	return
}

func (v Vector) X() int32 { return v[0] }
func (v Vector) Y() int32 { return v[1] }
func (v Vector) Z() int32 { return v[2] }

// Add returns the component-wise sum, wrapping on overflow.
func (v Vector) Add(o Vector) Vector {
	return Vector{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns the component-wise difference, wrapping on overflow.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Neg reverses every component.
func (v Vector) Neg() Vector {
	return Vector{-v[0], -v[1], -v[2]}
}

// Mask zeroes the components beyond dim.
func (v Vector) Mask(dim Dimension) (m Vector) {
	copy(m[:dim], v[:dim])
	return
}

// IsZero is true when all components are zero.
func (v Vector) IsZero() bool {
	return v == ORIGIN
}

// String formats the vector as "(x,y,z)".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for n, c := range v {
		parts[n] = fmt.Sprintf("%d", c)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
