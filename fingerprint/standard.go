// Package fingerprint provides fingerprints for the ( instruction: the
// standard NULL, ROMA, BOOL and MODU sets, and sets scripted in Starlark.
package fingerprint

import (
	"github.com/ezrec/funge/engine"
)

// table builds a fingerprint from a name known to be valid.
func table(name string, instructions map[byte]engine.Instruction) *engine.Table {
	id, err := engine.ParseFingerprintId(name)
	if err != nil {
		panic(err)
	}
	return &engine.Table{Name: id, Instructions: instructions}
}

func push(value int32) engine.Instruction {
	return func(eng *engine.Engine, ip *engine.IP) bool {
		ip.Stacks.Push(value)
		return true
	}
}

func binary(op func(a, b int32) int32) engine.Instruction {
	return func(eng *engine.Engine, ip *engine.IP) bool {
		b, a := ip.Stacks.PopTwo()
		ip.Stacks.Push(op(a, b))
		return true
	}
}

func reflect(eng *engine.Engine, ip *engine.IP) bool {
	return false
}

// Null overrides every letter with reflect.
func Null() *engine.Table {
	instructions := map[byte]engine.Instruction{}
	for letter := byte('A'); letter <= 'Z'; letter++ {
		instructions[letter] = reflect
	}
	return table("NULL", instructions)
}

// Roman pushes the values of the roman numerals.
func Roman() *engine.Table {
	return table("ROMA", map[byte]engine.Instruction{
		'I': push(1),
		'V': push(5),
		'X': push(10),
		'L': push(50),
		'C': push(100),
		'D': push(500),
		'M': push(1000),
	})
}

// Boolean provides bitwise logic.
func Boolean() *engine.Table {
	return table("BOOL", map[byte]engine.Instruction{
		'A': binary(func(a, b int32) int32 { return a & b }),
		'O': binary(func(a, b int32) int32 { return a | b }),
		'X': binary(func(a, b int32) int32 { return a ^ b }),
		'N': func(eng *engine.Engine, ip *engine.IP) bool {
			ip.Stacks.Push(^ip.Stacks.Pop())
			return true
		},
	})
}

// Modulo provides the three flavours of modulo. A zero divisor yields zero.
func Modulo() *engine.Table {
	return table("MODU", map[byte]engine.Instruction{
		'M': binary(FlooredModulo),
		'U': binary(EuclideanModulo),
		'R': binary(engine.Remainder),
	})
}

// FlooredModulo takes the sign of the divisor.
func FlooredModulo(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	r := int64(a) % int64(b)
	if r != 0 && (r < 0) != (b < 0) {
		r += int64(b)
	}
	return int32(r)
}

// EuclideanModulo is never negative.
func EuclideanModulo(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	r := int64(a) % int64(b)
	if r < 0 {
		r += max(int64(b), -int64(b))
	}
	return int32(r)
}

// Standard registers the standard fingerprints.
func Standard(reg *engine.Registry) {
	reg.Register(Null())
	reg.Register(Roman())
	reg.Register(Boolean())
	reg.Register(Modulo())
}
