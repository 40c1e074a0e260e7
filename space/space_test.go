package space

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpace_Default(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	assert.Equal(SPACE, s.Get(Vec(0, 0)))
	assert.Equal(SPACE, s.Get(Vec(-1, -1)))
	assert.Equal(SPACE, s.Get(Vec(math.MaxInt32, math.MinInt32)))
	assert.Equal(0, s.Pages(), "reads never allocate")

	_, _, ok := s.Bounds()
	assert.False(ok)
}

func TestSpace_PutGet(t *testing.T) {
	assert := assert.New(t)

	table := []Vector{
		Vec(0, 0), Vec(31, 31), Vec(32, 0), Vec(-1, 0), Vec(0, -1),
		Vec(-32, -32), Vec(-33, 17), Vec(math.MaxInt32, math.MinInt32),
		Vec(math.MinInt32, math.MaxInt32),
	}

	for _, dim := range []Dimension{DIM_1, DIM_2, DIM_3} {
		s := NewSpace(dim)
		for n, addr := range table {
			addr = addr.Mask(dim)
			s.Put(addr, int32(n+100))
			assert.Equal(int32(n+100), s.Get(addr), fmt.Sprintf("%v %v", dim, addr))
		}
	}
}

func TestSpace_Neighbours(t *testing.T) {
	assert := assert.New(t)

	// Cells either side of a page boundary must not alias.
	s := NewSpace(DIM_2)
	s.Put(Vec(-1, 0), 'a')
	s.Put(Vec(0, 0), 'b')
	s.Put(Vec(0, -1), 'c')
	s.Put(Vec(-1, -1), 'd')

	assert.Equal(int32('a'), s.Get(Vec(-1, 0)))
	assert.Equal(int32('b'), s.Get(Vec(0, 0)))
	assert.Equal(int32('c'), s.Get(Vec(0, -1)))
	assert.Equal(int32('d'), s.Get(Vec(-1, -1)))
	assert.Equal(4, s.Pages())
	assert.Equal(SPACE, s.Get(Vec(-2, 0)))
}

func TestSpace_Locate(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	key, index := s.locate(Vec(-1, -1))
	assert.Equal(Vec(-1, -1), key)
	assert.Equal(31+31*32, index)

	key, index = s.locate(Vec(33, 2))
	assert.Equal(Vec(1, 0), key)
	assert.Equal(1+2*32, index)

	s3 := NewSpace(DIM_3)
	key, index = s3.locate(Vec(-17, 16, 5))
	assert.Equal(Vec(-2, 1, 0), key)
	assert.Equal(15+0*16+5*256, index)
	assert.Equal(16*16*16, s3.PageCapacity())
}

func TestSpace_UnusedComponents(t *testing.T) {
	assert := assert.New(t)

	// Unused components never take part in addressing.
	s := NewSpace(DIM_1)
	s.Put(Vec(5, 7, 9), 'x')
	assert.Equal(int32('x'), s.Get(Vec(5)))
	assert.Equal(int32('x'), s.Get(Vec(5, -3, 2)))
}

func TestSpace_Bounds(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	s.Put(Vec(3, 4), 'a')
	s.Put(Vec(-2, 10), 'b')
	s.Put(Vec(100, 100), SPACE)

	least, greatest, ok := s.Bounds()
	assert.True(ok)
	assert.Equal(Vec(-2, 4), least)
	assert.Equal(Vec(3, 10), greatest)
	assert.True(s.Contains(Vec(0, 5)))
	assert.False(s.Contains(Vec(4, 5)))

	s.Reset()
	_, _, ok = s.Bounds()
	assert.False(ok)
	assert.Equal(0, s.Pages())
}

func TestSpace_Wrap(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	s.Put(Vec(0, 0), '>')
	s.Put(Vec(9, 4), '<')

	table := []struct {
		pos, delta, next Vector
	}{
		{Vec(3, 2), EAST, Vec(4, 2)},
		{Vec(9, 2), EAST, Vec(0, 2)},
		{Vec(0, 2), WEST, Vec(9, 2)},
		{Vec(5, 0), NORTH, Vec(5, 4)},
		{Vec(5, 4), SOUTH, Vec(5, 0)},
		{Vec(8, 3), Vec(2, 1), Vec(2, 0)},
		{Vec(20, 2), EAST, Vec(0, 2)},
		{Vec(-5, 2), EAST, Vec(-4, 2)},
		{Vec(3, 20), EAST, Vec(4, 20)},
		{Vec(3, 2), Vec(0, 0), Vec(3, 2)},
	}

	for _, entry := range table {
		assert.Equal(entry.next, s.Wrap(entry.pos, entry.delta), fmt.Sprintf("%+v", entry))
	}
}

func TestSpace_WrapEmpty(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	assert.Equal(Vec(1, 0), s.Wrap(Vec(0, 0), EAST))
	assert.Equal(Vec(math.MinInt32, 0), s.Wrap(Vec(math.MaxInt32, 0), EAST))
}

func TestSpace_Enter(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	_, ok := s.Enter(Vec(0, 0), EAST)
	assert.False(ok)

	s.Put(Vec(0, 0), '>')
	s.Put(Vec(9, 4), '<')

	table := []struct {
		pos, delta, next Vector
		ok               bool
	}{
		{Vec(3, 2), EAST, Vec(4, 2), true},
		{Vec(9, 2), EAST, Vec(0, 2), true},
		{Vec(-50, 2), EAST, Vec(0, 2), true},
		{Vec(-50, 2), WEST, Vec(9, 2), true},
		{Vec(50, 2), EAST, Vec(0, 2), true},
		{Vec(5, -30), SOUTH, Vec(5, 0), true},
		{Vec(5, 30), SOUTH, Vec(5, 0), true},
		{Vec(3, 20), EAST, Vec(), false},
		{Vec(3, 2), Vec(0, 0), Vec(), false},
	}

	for _, entry := range table {
		next, ok := s.Enter(entry.pos, entry.delta)
		assert.Equal(entry.ok, ok, fmt.Sprintf("%+v", entry))
		if entry.ok {
			assert.Equal(entry.next, next, fmt.Sprintf("%+v", entry))
		}
	}
}

func TestSpace_Advance(t *testing.T) {
	assert := assert.New(t)

	s := NewSpace(DIM_2)
	_, ok := s.Advance(Vec(0, 0), EAST, 1)
	assert.False(ok)

	s.Put(Vec(0, 0), '>')
	s.Put(Vec(9, 4), '<')

	table := []struct {
		pos, delta Vector
		n          int64
		next       Vector
		ok         bool
	}{
		{Vec(3, 2), EAST, 0, Vec(3, 2), true},
		{Vec(3, 2), EAST, 1, Vec(4, 2), true},
		{Vec(3, 2), EAST, 7, Vec(0, 2), true},
		{Vec(3, 2), EAST, -4, Vec(9, 2), true},
		{Vec(3, 2), EAST, math.MaxInt32, Vec(0, 2), true},
		{Vec(5, 0), NORTH, 1, Vec(5, 4), true},
		{Vec(8, 3), Vec(2, 1), 1, Vec(2, 0), true},
		{Vec(20, 2), EAST, 1, Vec(), false},
		{Vec(3, 2), Vec(0, 0), 5, Vec(), false},
	}

	for _, entry := range table {
		next, ok := s.Advance(entry.pos, entry.delta, entry.n)
		assert.Equal(entry.ok, ok, fmt.Sprintf("%+v", entry))
		if entry.ok {
			assert.Equal(entry.next, next, fmt.Sprintf("%+v", entry))
		}
	}

	// Matches stepping with Wrap.
	pos := Vec(8, 3)
	for range 11 {
		pos = s.Wrap(pos, Vec(2, 1))
	}
	next, _ := s.Advance(Vec(8, 3), Vec(2, 1), 11)
	assert.Equal(pos, next)
}

func TestTorusAdvance(t *testing.T) {
	assert := assert.New(t)

	size := Vec(80, 25)
	assert.Equal(Vec(0, 3), TorusAdvance(Vec(79, 3), EAST, 1, size))
	assert.Equal(Vec(33, 3), TorusAdvance(Vec(0, 3), WEST, math.MaxInt32, size))
	assert.Equal(Vec(5, 24), TorusAdvance(Vec(5, 0), SOUTH, -1, size))
}

func TestTorus(t *testing.T) {
	assert := assert.New(t)

	size := Vec(80, 25)
	assert.Equal(Vec(0, 3), Torus(Vec(79, 3), EAST, size))
	assert.Equal(Vec(79, 3), Torus(Vec(0, 3), WEST, size))
	assert.Equal(Vec(5, 24), Torus(Vec(5, 0), NORTH, size))
	assert.Equal(Vec(5, 0), Torus(Vec(5, 24), SOUTH, size))
}

func FuzzSpace(f *testing.F) {
	f.Add(int32(0), int32(0), int32(0), int32(65))
	f.Add(int32(-1), int32(-1), int32(-1), int32(-1))
	f.Add(int32(math.MaxInt32), int32(math.MinInt32), int32(17), int32(32))

	f.Fuzz(func(t *testing.T, x, y, z, value int32) {
		assert := assert.New(t)

		for _, dim := range []Dimension{DIM_1, DIM_2, DIM_3} {
			s := NewSpace(dim)
			addr := Vec(x, y, z).Mask(dim)
			assert.Equal(SPACE, s.Get(addr))
			s.Put(addr, value)
			assert.Equal(value, s.Get(addr))
			assert.Equal(1, s.Pages())

			other := addr.Add(Vec(1))
			if other != addr {
				assert.Equal(SPACE, s.Get(other))
			}
		}
	})
}
