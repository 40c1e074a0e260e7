package engine

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/funge/space"
	"github.com/ezrec/funge/stack"
)

// befunge93 is the complete Befunge-93 instruction set.
const befunge93 = "+-*/%!`><^v?_|\":\\$.,#gp&~@0123456789 "

// Execute runs the instruction in cell for ip. It returns false when the
// instruction could not act, and the IP must reflect. Any change to the
// IP's position happens before its normal move.
func (eng *Engine) Execute(ip *IP, cell int32) bool {
	if eng.Dialect.Is93() && (cell < 0 || cell > 0x7f || !strings.ContainsRune(befunge93, rune(cell))) {
		return false
	}

	dim := eng.Dimension()
	toss := ip.Stacks.Top()

	switch {
	case cell >= '0' && cell <= '9':
		toss.Push(cell - '0')
		return true
	case cell >= 'a' && cell <= 'f':
		toss.Push(cell - 'a' + 10)
		return true
	case cell >= 'A' && cell <= 'Z':
		inst := ip.Alphabet.Resolve(byte(cell))
		if inst == nil {
			return false
		}
		return inst(eng, ip)
	}

	switch cell {
	case ' ', 'z', ';':
		// No operation.
	case '+':
		b, a := toss.PopTwo()
		toss.Push(a + b)
	case '-':
		b, a := toss.PopTwo()
		toss.Push(a - b)
	case '*':
		b, a := toss.PopTwo()
		toss.Push(a * b)
	case '/':
		b, a := toss.PopTwo()
		toss.Push(Divide(a, b))
	case '%':
		b, a := toss.PopTwo()
		toss.Push(Remainder(a, b))
	case '!':
		toss.Push(truth(toss.Pop() == 0))
	case '`':
		b, a := toss.PopTwo()
		toss.Push(truth(a > b))
	case '>':
		ip.Delta = space.EAST
	case '<':
		ip.Delta = space.WEST
	case '^', 'v', '|', '[', ']', 'w':
		if dim < space.DIM_2 {
			return false
		}
		eng.turn(ip, toss, cell)
	case 'h', 'l', 'm':
		if dim < space.DIM_3 {
			return false
		}
		eng.turn(ip, toss, cell)
	case '?':
		ip.Delta = eng.randomDelta()
	case '_':
		if toss.Pop() == 0 {
			ip.Delta = space.EAST
		} else {
			ip.Delta = space.WEST
		}
	case 'r', '=':
		// No paradigm is offered for =.
		return false
	case 'x':
		ip.Delta = toss.PopVector(dim)
	case '#':
		ip.Position = eng.Next(ip.Position, ip.Delta)
	case 'j':
		eng.jump(ip, toss.Pop())
	case 'k':
		return eng.iterate(ip)
	case '"':
		ip.StringMode = true
	case '\'':
		ip.Position = eng.Next(ip.Position, ip.Delta)
		toss.Push(eng.Space.Get(ip.Position))
	case 's':
		ip.Position = eng.Next(ip.Position, ip.Delta)
		eng.Space.Put(ip.Position, toss.Pop())
	case ':':
		value := toss.Pop()
		toss.Push(value)
		toss.Push(value)
	case '\\':
		b, a := toss.PopTwo()
		toss.Push(b)
		toss.Push(a)
	case '$':
		toss.Pop()
	case 'n':
		toss.Clear()
	case '.':
		return eng.write([]byte(strconv.Itoa(int(toss.Pop())) + " "))
	case ',':
		return eng.writeCell(toss.Pop())
	case '&':
		value, ok := eng.readNumber()
		if !ok {
			return false
		}
		toss.Push(value)
	case '~':
		value, ok := eng.readByte()
		if !ok {
			return false
		}
		toss.Push(value)
	case 'g':
		at := toss.PopVector(dim).Add(ip.Offset)
		toss.Push(eng.Space.Get(at))
	case 'p':
		at := toss.PopVector(dim).Add(ip.Offset)
		eng.Space.Put(at, toss.Pop())
	case '@':
		eng.state = STATE_STOPPED
	case 'q':
		eng.exitCode = toss.Pop()
		eng.quit = true
		eng.state = STATE_QUIT
	case 't':
		eng.split(ip)
	case '{':
		return eng.beginBlock(ip)
	case '}':
		return eng.endBlock(ip)
	case 'u':
		return eng.underStack(ip)
	case '(':
		return eng.loadFingerprint(ip)
	case ')':
		return eng.unloadFingerprint(ip)
	case 'y':
		eng.sysinfo(ip)
	case 'i':
		return eng.input(ip)
	case 'o':
		return eng.output(ip)
	default:
		return false
	}

	return true
}

func truth(ok bool) int32 {
	if ok {
		return 1
	}
	return 0
}

// Divide is a / b. Division by zero yields zero.
func Divide(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Remainder is a % b, with the sign of a. A zero divisor yields zero.
func Remainder(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a % b
}

// TurnLeft rotates a delta a quarter turn anticlockwise, with y pointing
// down the page.
func TurnLeft(delta space.Vector) space.Vector {
	return space.Vector{delta[1], -delta[0], delta[2]}
}

// TurnRight rotates a delta a quarter turn clockwise.
func TurnRight(delta space.Vector) space.Vector {
	return space.Vector{-delta[1], delta[0], delta[2]}
}

// turn handles the instructions that need a second or third dimension.
func (eng *Engine) turn(ip *IP, toss *stack.Stack, cell int32) {
	switch cell {
	case '^':
		ip.Delta = space.NORTH
	case 'v':
		ip.Delta = space.SOUTH
	case 'h':
		ip.Delta = space.HIGH
	case 'l':
		ip.Delta = space.LOW
	case '|':
		if toss.Pop() == 0 {
			ip.Delta = space.SOUTH
		} else {
			ip.Delta = space.NORTH
		}
	case 'm':
		if toss.Pop() == 0 {
			ip.Delta = space.LOW
		} else {
			ip.Delta = space.HIGH
		}
	case '[':
		ip.Delta = TurnLeft(ip.Delta)
	case ']':
		ip.Delta = TurnRight(ip.Delta)
	case 'w':
		b, a := toss.PopTwo()
		switch {
		case a < b:
			ip.Delta = TurnLeft(ip.Delta)
		case a > b:
			ip.Delta = TurnRight(ip.Delta)
		}
	}
}

// randomDelta picks one of the cardinal directions of the space.
func (eng *Engine) randomDelta() (delta space.Vector) {
	n := eng.Rand.Intn(2 * int(eng.Dimension()))
	delta[n/2] = 1
	if n%2 == 1 {
		delta[n/2] = -1
	}
	return
}

// jump moves the IP n cells, backwards for negative n.
func (eng *Engine) jump(ip *IP, n int32) {
	if eng.Dialect.Is93() {
		ip.Position = space.TorusAdvance(ip.Position, ip.Delta, int64(n), TORUS_SIZE)
		return
	}

	next, ok := eng.Space.Advance(ip.Position, ip.Delta, int64(n))
	if ok {
		ip.Position = next
	}
}

// PAD_LIMIT bounds the zero cells {, } and u may invent. Larger requests
// reflect.
const PAD_LIMIT = 1 << 20

// steady instructions change nothing but the delta, or nothing after their
// first run, so their repeats fall into a short cycle.
const steady = "z<>^vhl[]rn"

// iterate runs the next instruction n times from the k cell. 0k skips the
// instruction. If the repeats leave the IP where it was, heading the same
// way, it then moves past the instruction.
func (eng *Engine) iterate(ip *IP) bool {
	n := int64(ip.Stacks.Top().Pop())
	if n < 0 {
		return false
	}

	at, ok := eng.seek(eng.Next(ip.Position, ip.Delta), ip.Delta, !eng.Dialect.Is93())
	if !ok {
		return true
	}

	if n == 0 {
		ip.Position = at
		return true
	}

	cell := eng.Space.Get(at)
	pos := ip.Position
	delta := ip.Delta

	repeat := func() {
		if !eng.Execute(ip, cell) {
			ip.Reflect()
		}
	}

	settles := cell >= 0 && cell < 0x80 && strings.ContainsRune(steady, rune(cell))
	seen := []space.Vector{ip.Delta}
	for i := int64(1); i <= n; i++ {
		repeat()
		if eng.state != STATE_RUNNING {
			return true
		}

		if settles {
			// Once a delta comes round again, only the remainder matters.
			j := slices.Index(seen, ip.Delta)
			if j >= 0 {
				for range (n - i) % (i - int64(j)) {
					repeat()
				}
				break
			}
			seen = append(seen, ip.Delta)
		} else if i%ITERATE_POLL == 0 && eng.interrupted() {
			return true
		}
	}

	if ip.Position == pos && ip.Delta == delta {
		ip.Position = at
	}

	return true
}

// split creates a copy of ip heading the opposite way, one cell along.
func (eng *Engine) split(ip *IP) {
	child := ip.Clone()
	child.Id = eng.nextId
	eng.nextId++
	child.Reflect()
	child.Position = eng.Next(child.Position, child.Delta)

	eng.spawned = append(eng.spawned, child)
}

// beginBlock pushes a new TOSS holding the top n cells of the old one, and
// saves the storage offset on the old one.
func (eng *Engine) beginBlock(ip *IP) bool {
	soss := ip.Stacks.Top()
	n := int64(soss.Pop())

	if padding(n, soss.Depth()) > PAD_LIMIT || -n > PAD_LIMIT {
		return false
	}

	toss := &stack.Stack{}
	if n > 0 {
		soss.TransferTo(toss, int(n))
	} else {
		for range -n {
			soss.Push(0)
		}
	}

	soss.PushVector(ip.Offset, eng.Dimension())
	ip.Stacks.PushStack(toss)
	ip.Offset = ip.Position.Add(ip.Delta)
	return true
}

// endBlock drops the TOSS, returning its top n cells to the SOSS and
// restoring the storage offset.
func (eng *Engine) endBlock(ip *IP) bool {
	soss, ok := ip.Stacks.Second()
	if !ok {
		return false
	}

	toss := ip.Stacks.Top()
	n := int64(toss.Pop())
	if padding(n, toss.Depth()) > PAD_LIMIT {
		return false
	}

	ip.Offset = soss.PopVector(eng.Dimension())
	if n > 0 {
		toss.TransferTo(soss, int(n))
	} else {
		for range min(-n, int64(soss.Depth())) {
			soss.Pop()
		}
	}

	ip.Stacks.PopStack()
	return true
}

// underStack moves cells one at a time between the SOSS and the TOSS.
func (eng *Engine) underStack(ip *IP) bool {
	soss, ok := ip.Stacks.Second()
	if !ok {
		return false
	}

	toss := ip.Stacks.Top()
	count := int64(toss.Pop())
	if padding(count, soss.Depth()) > PAD_LIMIT || padding(-count, toss.Depth()) > PAD_LIMIT {
		return false
	}

	switch {
	case count > 0:
		for range count {
			toss.Push(soss.Pop())
		}
	case count < 0:
		for range -count {
			soss.Push(toss.Pop())
		}
	}

	return true
}

// padding is the number of zeros taking n cells from a stack of the given
// depth would invent.
func padding(n int64, depth int) int64 {
	return max(0, n-int64(depth))
}

// popFingerprintId pops a count, then that many cells packed into an id.
func popFingerprintId(s *stack.Stack) (id FingerprintId, ok bool) {
	count := s.Pop()
	if count <= 0 {
		return
	}

	for range count {
		id = (id << 8) | FingerprintId(uint32(s.Pop()))
	}

	return id, true
}

func (eng *Engine) loadFingerprint(ip *IP) bool {
	toss := ip.Stacks.Top()
	id, ok := popFingerprintId(toss)
	if !ok || eng.Registry == nil {
		return false
	}

	fp, ok := eng.Registry.Find(id)
	if !ok {
		return false
	}

	ip.Alphabet.Load(fp)
	toss.Push(int32(id))
	toss.Push(1)

	return true
}

func (eng *Engine) unloadFingerprint(ip *IP) bool {
	id, ok := popFingerprintId(ip.Stacks.Top())
	if !ok {
		return false
	}

	return ip.Alphabet.Remove(id)
}

// write sends bytes to the tape. Unless Buffered, they are flushed at once
// so a failing sink reflects the instruction that wrote to it.
func (eng *Engine) write(p []byte) bool {
	if eng.Tape == nil {
		return false
	}

	_, err := eng.Tape.Write(p)
	if err == nil && !eng.Buffered {
		err = eng.Tape.Flush()
	}

	if err != nil {
		if eng.Verbose {
			log.Trace().Err(err).Msg("engine: write")
		}
		return false
	}

	return true
}

// writeCell writes a character. Befunge-93 writes bytes; otherwise cells
// beyond ASCII are written as UTF-8.
func (eng *Engine) writeCell(c int32) bool {
	if !eng.Dialect.Is93() && c >= utf8.RuneSelf && utf8.ValidRune(rune(c)) {
		return eng.write(utf8.AppendRune(nil, rune(c)))
	}
	return eng.write([]byte{byte(c)})
}

func (eng *Engine) readByte() (value int32, ok bool) {
	if eng.Tape == nil {
		return
	}

	c, err := eng.Tape.ReadByte()
	if err != nil {
		return
	}

	return int32(c), true
}

// readNumber reads a decimal number, discarding anything before its first
// digit. The character after the number is left unread.
func (eng *Engine) readNumber() (value int32, ok bool) {
	c, ok := eng.readByte()
	for ok && (c < '0' || c > '9') {
		c, ok = eng.readByte()
	}
	if !ok {
		return
	}

	for ok && c >= '0' && c <= '9' {
		value = value*10 + (c - '0')
		c, ok = eng.readByte()
	}
	if ok {
		_ = eng.Tape.UnreadByte()
	}

	return value, true
}
