package engine

import (
	"os"

	"github.com/ezrec/funge/space"
	"github.com/ezrec/funge/stack"
)

// Sysinfo flag bits, reported in the first cell.
const (
	SYSINFO_FLAG_CONCURRENT = int32(0x01) // t is implemented.
	SYSINFO_FLAG_INPUT      = int32(0x02) // i is implemented.
	SYSINFO_FLAG_OUTPUT     = int32(0x04) // o is implemented.
	SYSINFO_FLAG_EXECUTE    = int32(0x08) // = is implemented.
	SYSINFO_FLAG_UNBUFFERED = int32(0x10) // Output is unbuffered.
)

// pushBlock pushes a byte block so that popping returns it in order.
func pushBlock(s *stack.Stack, block []byte) {
	for n := len(block) - 1; n >= 0; n-- {
		s.Push(int32(block[n]))
	}
}

// Sysinfo returns the cells the y instruction reports for ip, cell 1
// first. Vectors take one cell per dimension.
func (eng *Engine) Sysinfo(ip *IP) (cells []int32) {
	dim := eng.Dimension()
	now := eng.Now()

	flags := SYSINFO_FLAG_CONCURRENT | SYSINFO_FLAG_INPUT | SYSINFO_FLAG_OUTPUT
	if !eng.Buffered {
		flags |= SYSINFO_FLAG_UNBUFFERED
	}

	var least, greatest space.Vector
	if eng.Dialect.Is93() {
		greatest = TORUS_SIZE.Sub(space.Vec(1, 1))
	} else {
		least, greatest, _ = eng.Space.Bounds()
	}

	args := eng.Environment.Args
	if len(args) == 0 {
		args = []byte{0, 0}
	}
	env := eng.Environment.Env
	if len(env) == 0 {
		env = []byte{0}
	}

	// Built last cell first, so cell 1 ends up on top.
	info := &stack.Stack{}
	pushBlock(info, env)
	pushBlock(info, args)
	depths := ip.Stacks.Depths()
	for n := len(depths) - 1; n >= 0; n-- {
		info.Push(int32(depths[n]))
	}
	info.Push(int32(len(depths)))
	info.Push(int32(now.Hour()*256*256 + now.Minute()*256 + now.Second()))
	info.Push(int32((now.Year()-1900)*256*256 + int(now.Month())*256 + now.Day()))
	info.PushVector(greatest.Sub(least), dim)
	info.PushVector(least, dim)
	info.PushVector(ip.Offset, dim)
	info.PushVector(ip.Delta, dim)
	info.PushVector(ip.Position, dim)
	info.Push(0)
	info.Push(ip.Id)
	info.Push(int32(dim))
	info.Push(int32(os.PathSeparator))
	info.Push(0)
	info.Push(VERSION)
	info.Push(HANDPRINT)
	info.Push(4)
	info.Push(flags)

	cells = make([]int32, info.Depth())
	for n := range cells {
		cells[n], _ = info.PeekNth(n)
	}

	return
}

// sysinfo executes y. Zero or less pushes every cell. A larger index than
// there are cells picks from deeper in the stack, as if every cell had
// been pushed.
func (eng *Engine) sysinfo(ip *IP) {
	toss := ip.Stacks.Top()
	n := int(toss.Pop())
	cells := eng.Sysinfo(ip)

	switch {
	case n <= 0:
		for i := len(cells) - 1; i >= 0; i-- {
			toss.Push(cells[i])
		}
	case n <= len(cells):
		toss.Push(cells[n-1])
	default:
		value, _ := toss.PeekNth(n - len(cells) - 1)
		toss.Push(value)
	}
}
