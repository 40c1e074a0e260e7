// Package stack implements the funge stack and stack-of-stacks.
//
// Stacks never underflow: popping an empty stack yields zero.
package stack

import (
	"github.com/ezrec/funge/space"
)

// Stack is a LIFO of cells. The top is the end of Data.
type Stack struct {
	Data []int32
}

// Push a value.
func (s *Stack) Push(value int32) {
	s.Data = append(s.Data, value)
}

// Pop a value, or zero if empty.
func (s *Stack) Pop() (value int32) {
	if s.Empty() {
		return
	}
	value = s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return
}

// PopTwo pops a then b.
func (s *Stack) PopTwo() (a int32, b int32) {
	a = s.Pop()
	b = s.Pop()
	return
}

// PushVector pushes the first dim components of v, x first.
func (s *Stack) PushVector(v space.Vector, dim space.Dimension) {
	for n := range int(dim) {
		s.Push(v[n])
	}
}

// PopVector pops dim components, the last component first.
func (s *Stack) PopVector(dim space.Dimension) (v space.Vector) {
	for n := int(dim) - 1; n >= 0; n-- {
		v[n] = s.Pop()
	}
	return
}

// PushString pushes a 0"gnirts" so popping yields the bytes in order.
func (s *Stack) PushString(text string) {
	s.Push(0)
	for n := len(text) - 1; n >= 0; n-- {
		s.Push(int32(text[n]))
	}
}

// PopString pops a null terminated string.
func (s *Stack) PopString() string {
	var text []byte
	for {
		c := s.Pop()
		if c == 0 {
			break
		}
		text = append(text, byte(c))
	}
	return string(text)
}

// Peek the top value.
func (s *Stack) Peek() (value int32, ok bool) {
	return s.PeekNth(0)
}

// PeekNth peeks the nth value, where 0 is the top.
func (s *Stack) PeekNth(n int) (value int32, ok bool) {
	if n < 0 || n >= len(s.Data) {
		return
	}

	return s.Data[len(s.Data)-1-n], true
}

// Empty is true if there are no values.
func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

// Depth is the number of values.
func (s *Stack) Depth() int {
	return len(s.Data)
}

// Clear removes all values.
func (s *Stack) Clear() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// TransferTo moves count cells from the top of s onto other, keeping their
// order. If s holds fewer than count, zeros fill the gap below the moved
// cells.
func (s *Stack) TransferTo(other *Stack, count int) {
	if count <= 0 {
		return
	}

	moved := min(count, len(s.Data))
	for range count - moved {
		other.Push(0)
	}

	start := len(s.Data) - moved
	other.Data = append(other.Data, s.Data[start:]...)
	s.Data = s.Data[:start]
}

// Clone returns an independent copy.
func (s *Stack) Clone() *Stack {
	return &Stack{Data: append([]int32(nil), s.Data...)}
}
