package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/funge/space"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(0x12345678)
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(int32(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(-2)

	assert.Equal(int32(-2), s.Pop())
	assert.Equal(1, s.Depth())
	assert.Equal(int32(1), s.Pop())
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.Equal(int32(0), s.Pop())
	assert.Equal(int32(0), s.Pop())
	assert.Equal(0, s.Depth())
}

func TestStack_PushPop_Depth(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(9)
	before := s.Depth()
	s.Push(42)
	assert.Equal(int32(42), s.Pop())
	assert.Equal(before, s.Depth())
}

func TestStack_PopTwo(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)
	a, b := s.PopTwo()
	assert.Equal(int32(2), a)
	assert.Equal(int32(1), b)

	a, b = s.PopTwo()
	assert.Equal(int32(0), a)
	assert.Equal(int32(0), b)
}

func TestStack_PeekNth(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(10)
	s.Push(20)
	s.Push(30)

	table := []struct {
		n     int
		value int32
		ok    bool
	}{
		{0, 30, true},
		{1, 20, true},
		{2, 10, true},
		{3, 0, false},
		{-1, 0, false},
	}
	for _, entry := range table {
		value, ok := s.PeekNth(entry.n)
		assert.Equal(entry.ok, ok, "n=%d", entry.n)
		assert.Equal(entry.value, value, "n=%d", entry.n)
	}

	_, ok := (&Stack{}).Peek()
	assert.False(ok)
}

func TestStack_Clear(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.True(s.Empty())
	s.Clear()
	assert.True(s.Empty())
}

func TestStack_TransferTo(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		src   []int32
		count int
		dst   []int32
		left  []int32
	}{
		{"some", []int32{1, 2, 3}, 2, []int32{9, 2, 3}, []int32{1}},
		{"all", []int32{1, 2, 3}, 3, []int32{9, 1, 2, 3}, []int32{}},
		{"short", []int32{1, 2}, 4, []int32{9, 0, 0, 1, 2}, []int32{}},
		{"none", []int32{1, 2}, 0, []int32{9}, []int32{1, 2}},
		{"negative", []int32{1, 2}, -3, []int32{9}, []int32{1, 2}},
	}

	for _, entry := range table {
		src := &Stack{Data: append([]int32{}, entry.src...)}
		dst := &Stack{Data: []int32{9}}
		src.TransferTo(dst, entry.count)
		assert.Equal(entry.dst, dst.Data, entry.name)
		assert.Equal(entry.left, append([]int32{}, src.Data...), entry.name)
	}
}

func TestStack_Vector(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.PushVector(space.Vec(1, 2, 3), space.DIM_2)
	assert.Equal([]int32{1, 2}, s.Data)
	assert.Equal(space.Vec(1, 2), s.PopVector(space.DIM_2))

	s.PushVector(space.Vec(4, 5, 6), space.DIM_3)
	assert.Equal(space.Vec(4, 5, 6), s.PopVector(space.DIM_3))
	assert.Equal(space.Vec(), s.PopVector(space.DIM_3))
}

func TestStack_String(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.PushString("abc")
	assert.Equal([]int32{0, 'c', 'b', 'a'}, s.Data)
	assert.Equal("abc", s.PopString())
	assert.True(s.Empty())
}
