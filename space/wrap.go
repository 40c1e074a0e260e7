package space

// Wrap advances pos by delta and applies Lahey-space wrapping: an IP that
// would leave the bounding box re-enters on its far side, found by walking
// backwards along -delta to the last in-box cell.
//
// When the backwards line never meets the bounding box (or nothing has been
// written yet) the plain wrapping sum is returned.
func (s *Space) Wrap(pos Vector, delta Vector) (next Vector) {
	next = pos.Add(delta)
	if !s.bounded || s.Contains(next) {
		return
	}

	_, upper, ok := s.span(pos, delta, 0)
	if !ok {
		return
	}

	return s.step(pos, delta, -upper)
}

// Enter finds the first in-box position reached by travelling from pos
// along delta, wrapping as Wrap does. ok is false when the line of travel
// never meets the bounding box.
func (s *Space) Enter(pos Vector, delta Vector) (next Vector, ok bool) {
	if !s.bounded {
		return
	}

	// Ahead of pos: the smallest k >= 1 with pos + k*delta in the box.
	if lower, _, ahead := s.span(pos, delta.Neg(), 1); ahead {
		return s.step(pos, delta, lower), true
	}

	// Behind pos: the far edge, where the wrapped IP comes back in.
	if _, upper, behind := s.span(pos, delta, 0); behind {
		return s.step(pos, delta, -upper), true
	}

	return
}

// Advance moves pos n steps along delta, backwards for negative n, with the
// wrapping of Wrap but without visiting each cell. pos must lie in the
// bounding box; ok is false otherwise, or when delta does not move.
func (s *Space) Advance(pos Vector, delta Vector, n int64) (next Vector, ok bool) {
	if !s.bounded || !s.Contains(pos) {
		return
	}

	// All k with pos + k*delta in the box. The IP cycles through them.
	lower, upper, ok := s.span(pos, delta.Neg(), -(int64(1) << 40))
	if !ok {
		return
	}

	cycle := upper - lower + 1
	k := floorMod(n-lower, cycle) + lower

	return s.step(pos, delta, k), true
}

// span finds the range [lower, upper] of k >= from where pos - k*delta lies
// inside the bounding box.
func (s *Space) span(pos Vector, delta Vector, from int64) (lower int64, upper int64, ok bool) {
	lower = from
	upper = int64(1) << 40
	moving := false
	for n := range int(s.dim) {
		p := int64(pos[n])
		d := int64(delta[n])
		lo := int64(s.least[n])
		hi := int64(s.greatest[n])
		switch {
		case d == 0:
			if p < lo || p > hi {
				return
			}
			continue
		case d > 0:
			// lo <= p - k*d <= hi
			lower = max(lower, ceilDiv(p-hi, d))
			upper = min(upper, floorDiv(p-lo, d))
		default:
			// lo <= p + k*|d| <= hi
			lower = max(lower, ceilDiv(lo-p, -d))
			upper = min(upper, floorDiv(hi-p, -d))
		}
		moving = true
	}

	ok = moving && lower <= upper
	return
}

// step returns pos + k*delta over the active dimensions.
func (s *Space) step(pos Vector, delta Vector, k int64) (next Vector) {
	next = pos
	for n := range int(s.dim) {
		next[n] = int32(int64(pos[n]) + k*int64(delta[n]))
	}
	return
}

// Torus advances pos by delta on a fixed size torus anchored at the origin,
// as used by Befunge-93.
func Torus(pos Vector, delta Vector, size Vector) (next Vector) {
	next = pos.Add(delta)
	for n, width := range size {
		if width <= 0 {
			next[n] = 0
			continue
		}
		next[n] = int32(floorMod(int64(next[n]), int64(width)))
	}
	return
}

// TorusAdvance moves pos n steps along delta on a fixed size torus, as
// Torus repeated n times.
func TorusAdvance(pos Vector, delta Vector, n int64, size Vector) (next Vector) {
	for c, width := range size {
		if width <= 0 {
			continue
		}
		next[c] = int32(floorMod(int64(pos[c])+floorMod(n*int64(delta[c]), int64(width)), int64(width)))
	}
	return
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
