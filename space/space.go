// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package space

import (
	"math/bits"

	"github.com/rs/zerolog/log"
)

const (
	SPACE = int32(' ') // Value of a never written cell.

	PAGE_WIDTH_DIM_1 = 1024 // Page width for Unefunge.
	PAGE_WIDTH_DIM_2 = 32   // Page width for Befunge.
	PAGE_WIDTH_DIM_3 = 16   // Page width for Trefunge.
)

// page is the flat storage of one hyper-cube of cells.
type page []int32

// Space is a sparse, paged funge-space.
type Space struct {
	Verbose bool // Set to trace page allocations.

	dim   Dimension
	width int32
	shift int
	pages map[Vector]page

	bounded  bool
	least    Vector
	greatest Vector
}

// NewSpace creates an empty funge-space of the given dimension.
func NewSpace(dim Dimension) (s *Space) {
	var width int32
	switch dim {
	case DIM_1:
		width = PAGE_WIDTH_DIM_1
	case DIM_3:
		width = PAGE_WIDTH_DIM_3
	default:
		dim = DIM_2
		width = PAGE_WIDTH_DIM_2
	}

	s = &Space{
		dim:   dim,
		width: width,
		shift: bits.TrailingZeros32(uint32(width)),
	}
	s.Reset()

	return
}

// Reset discards all pages and the bounding box.
func (s *Space) Reset() {
	s.pages = make(map[Vector]page)
	s.bounded = false
	s.least = ORIGIN
	s.greatest = ORIGIN
}

// Dimension of the space.
func (s *Space) Dimension() Dimension {
	return s.dim
}

// PageWidth is the edge length of a page.
func (s *Space) PageWidth() int32 {
	return s.width
}

// PageCapacity is the number of cells in a page.
func (s *Space) PageCapacity() int {
	capacity := 1
	for range int(s.dim) {
		capacity *= int(s.width)
	}
	return capacity
}

// Pages is the number of allocated pages.
func (s *Space) Pages() int {
	return len(s.pages)
}

// locate splits an address into the key of its page and the linear index
// inside that page. Both use floored division, so negative coordinates
// map contiguously.
func (s *Space) locate(addr Vector) (key Vector, index int) {
	mask := s.width - 1
	stride := 1
	for n := range int(s.dim) {
		key[n] = addr[n] >> s.shift
		index += int(addr[n]&mask) * stride
		stride *= int(s.width)
	}
	return
}

// Get reads a cell. Never allocates.
func (s *Space) Get(addr Vector) int32 {
	key, index := s.locate(addr)
	pg, ok := s.pages[key]
	if !ok {
		return SPACE
	}
	return pg[index]
}

// Put writes a cell, allocating its page on demand.
func (s *Space) Put(addr Vector, value int32) {
	key, index := s.locate(addr)
	pg, ok := s.pages[key]
	if !ok {
		pg = make(page, s.PageCapacity())
		for n := range pg {
			pg[n] = SPACE
		}
		s.pages[key] = pg
		if s.Verbose {
			log.Trace().Str("page", key.String()).Int("pages", len(s.pages)).Msg("space: allocate")
		}
	}
	pg[index] = value

	if value != SPACE {
		s.grow(addr.Mask(s.dim))
	}
}

// grow extends the bounding box to include addr.
func (s *Space) grow(addr Vector) {
	if !s.bounded {
		s.least = addr
		s.greatest = addr
		s.bounded = true
		return
	}
	for n := range int(s.dim) {
		s.least[n] = min(s.least[n], addr[n])
		s.greatest[n] = max(s.greatest[n], addr[n])
	}
}

// Bounds returns the least and greatest addresses that ever held a
// non-space value. ok is false for a space nothing was written to.
func (s *Space) Bounds() (least Vector, greatest Vector, ok bool) {
	return s.least, s.greatest, s.bounded
}

// Contains is true if addr lies inside the bounding box.
func (s *Space) Contains(addr Vector) bool {
	if !s.bounded {
		return false
	}
	for n := range int(s.dim) {
		if addr[n] < s.least[n] || addr[n] > s.greatest[n] {
			return false
		}
	}
	return true
}
