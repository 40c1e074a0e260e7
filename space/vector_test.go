package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Add(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Vec(3, 5, 7), Vec(1, 2, 3).Add(Vec(2, 3, 4)))
	assert.Equal(Vec(-1, -1, -1), Vec(1, 2, 3).Sub(Vec(2, 3, 4)))
	assert.Equal(Vec(-1, 2, 0), Vec(1, -2).Neg())
}

func TestVector_Wraps(t *testing.T) {
	assert := assert.New(t)

	v := Vec(math.MaxInt32, math.MinInt32, math.MaxInt32)
	got := v.Add(Vec(1, -1, 1))
	assert.Equal(Vec(math.MinInt32, math.MaxInt32, math.MinInt32), got)
}

func TestVector_Mask(t *testing.T) {
	assert := assert.New(t)

	v := Vec(1, 2, 3)
	assert.Equal(Vec(1), v.Mask(DIM_1))
	assert.Equal(Vec(1, 2), v.Mask(DIM_2))
	assert.Equal(v, v.Mask(DIM_3))
	assert.True(Vec().IsZero())
	assert.Equal("(1,2,3)", v.String())
}
