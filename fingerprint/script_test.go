package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/funge/engine"
)

const testScript = `
def add(stack):
    b = stack.pop()
    a = stack.pop()
    stack.append(a + b)

def refuse(stack):
    return False

def forever(stack):
    for n in range(1 << 30):
        pass

fingerprint("SCRP", A=add, R=refuse, F=forever)
fingerprint("TWO", D=lambda stack: stack.append(2))
`

func TestLoadScript(t *testing.T) {
	assert := assert.New(t)

	reg := engine.NewRegistry()
	ids, err := LoadScript(reg, "test.star", testScript)
	assert.NoError(err)
	assert.Len(ids, 2)

	scrp, _ := engine.ParseFingerprintId("SCRP")
	two, _ := engine.ParseFingerprintId("TWO")
	assert.Equal([]engine.FingerprintId{scrp, two}, ids)

	fp, ok := reg.Find(scrp)
	assert.True(ok)
	assert.NotNil(fp.Lookup('A'))
	assert.Nil(fp.Lookup('B'))

	eng := engine.NewEngine(engine.DIALECT_BEFUNGE_98)
	eng.Registry = reg
	ip := eng.NewIP()
	ip.Alphabet.Load(fp)
	fp, _ = reg.Find(two)
	ip.Alphabet.Load(fp)

	ip.Stacks.Push(2)
	ip.Stacks.Push(3)
	assert.True(eng.Execute(ip, 'A'))
	assert.Equal([]int32{5}, ip.Stacks.Top().Data)

	assert.True(eng.Execute(ip, 'D'))
	assert.Equal([]int32{5, 2}, ip.Stacks.Top().Data)

	assert.False(eng.Execute(ip, 'R'))
	assert.Equal([]int32{5, 2}, ip.Stacks.Top().Data)

	// Runaway scripts are stopped, and the stack is untouched.
	assert.False(eng.Execute(ip, 'F'))
	assert.Equal([]int32{5, 2}, ip.Stacks.Top().Data)

	// Failing scripts reflect.
	ip.Stacks.Top().Clear()
	assert.False(eng.Execute(ip, 'A'))
}

func TestLoadScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		script string
		target error
	}{
		{`fingerprint("TOOLONG")`, engine.ErrFingerprintName("TOOLONG")},
		{`fingerprint("OK", a=len)`, ErrScriptLetter("a")},
		{`fingerprint("OK", A=1)`, ErrScriptCallable},
		{`fingerprint(`, nil},
	}

	for _, entry := range table {
		reg := engine.NewRegistry()
		_, err := LoadScript(reg, "bad.star", entry.script)
		assert.Error(err, entry.script)

		var script *ErrScript
		assert.ErrorAs(err, &script)
		assert.Equal("bad.star", script.Path)
		assert.Empty(reg.Ids())

		if entry.target != nil {
			assert.ErrorIs(err, entry.target, entry.script)
		}
	}
}
