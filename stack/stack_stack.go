package stack

// StackStack is a stack of stacks. It always holds at least one stack,
// the TOSS. Index 0 is the TOSS, index 1 the SOSS.
type StackStack struct {
	stacks []*Stack // Bottom first.
}

// NewStackStack returns a stack-stack holding one empty stack.
func NewStackStack() *StackStack {
	return &StackStack{stacks: []*Stack{{}}}
}

// Top returns the TOSS.
func (ss *StackStack) Top() *Stack {
	return ss.stacks[len(ss.stacks)-1]
}

// Second returns the SOSS, if there is one.
func (ss *StackStack) Second() (s *Stack, ok bool) {
	return ss.Nth(1)
}

// Nth returns the stack i levels below the TOSS.
func (ss *StackStack) Nth(i int) (s *Stack, ok bool) {
	if i < 0 || i >= len(ss.stacks) {
		return
	}
	return ss.stacks[len(ss.stacks)-1-i], true
}

// NumStacks is the number of stacks.
func (ss *StackStack) NumStacks() int {
	return len(ss.stacks)
}

// PushStack makes s the new TOSS.
func (ss *StackStack) PushStack(s *Stack) {
	ss.stacks = append(ss.stacks, s)
}

// PopStack removes the TOSS. It refuses to remove the last stack.
func (ss *StackStack) PopStack() (s *Stack, ok bool) {
	if len(ss.stacks) <= 1 {
		return
	}
	s = ss.stacks[len(ss.stacks)-1]
	ss.stacks = ss.stacks[:len(ss.stacks)-1]
	return s, true
}

// Push a value onto the TOSS.
func (ss *StackStack) Push(value int32) {
	ss.Top().Push(value)
}

// Pop a value from the TOSS.
func (ss *StackStack) Pop() int32 {
	return ss.Top().Pop()
}

// PopTwo pops a then b from the TOSS.
func (ss *StackStack) PopTwo() (a int32, b int32) {
	return ss.Top().PopTwo()
}

// Depths returns the depth of every stack, TOSS first.
func (ss *StackStack) Depths() (depths []int) {
	for n := len(ss.stacks) - 1; n >= 0; n-- {
		depths = append(depths, ss.stacks[n].Depth())
	}
	return
}

// Clone returns a deep copy.
func (ss *StackStack) Clone() *StackStack {
	clone := &StackStack{}
	for _, s := range ss.stacks {
		clone.stacks = append(clone.stacks, s.Clone())
	}
	return clone
}

// Reset drops every stack but an empty TOSS.
func (ss *StackStack) Reset() {
	ss.stacks = []*Stack{{}}
}
