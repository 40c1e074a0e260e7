package engine

import (
	"github.com/ezrec/funge/space"
	"github.com/ezrec/funge/stack"
)

// IP is an instruction pointer, a cooperative thread of execution.
type IP struct {
	Id         int32             // Unique id, reported by sysinfo.
	Position   space.Vector      // Cell about to execute.
	Delta      space.Vector      // Direction of travel.
	Offset     space.Vector      // Storage offset for g, p, i and o.
	Stacks     *stack.StackStack // Stack of stacks, TOSS on top.
	StringMode bool              // Pushing cells rather than executing them.
	Alphabet   Alphabet          // Loaded fingerprints.
}

// Reflect reverses the delta.
func (ip *IP) Reflect() {
	ip.Delta = ip.Delta.Neg()
}

// Clone copies the IP, including its stacks and alphabet.
func (ip *IP) Clone() (clone *IP) {
	clone = &IP{
		Id:         ip.Id,
		Position:   ip.Position,
		Delta:      ip.Delta,
		Offset:     ip.Offset,
		Stacks:     ip.Stacks.Clone(),
		StringMode: ip.StringMode,
		Alphabet:   ip.Alphabet.Clone(),
	}
	return
}
