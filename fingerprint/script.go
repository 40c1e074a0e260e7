// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fingerprint

import (
	"github.com/rs/zerolog/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/funge/engine"
)

// SCRIPT_MAX_STEPS bounds a single scripted instruction.
const SCRIPT_MAX_STEPS = 1 << 20

// LoadScript runs a Starlark script and registers the fingerprints it
// declares. src is as for starlark.ExecFile: nil reads the file at path.
//
// A script declares a fingerprint with the fingerprint builtin, naming a
// function for each letter:
//
//	def add(stack):
//	    b = stack.pop()
//	    a = stack.pop()
//	    stack.append(a + b)
//
//	fingerprint("EXMP", A=add)
//
// Each function receives the TOSS as a list, top last, and may change it
// in place. Returning False, or failing, reflects the IP.
func LoadScript(reg *engine.Registry, path string, src any) (ids []engine.FingerprintId, err error) {
	declare := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		err := starlark.UnpackPositionalArgs(fn.Name(), args, nil, 1, &name)
		if err != nil {
			return nil, err
		}

		id, err := engine.ParseFingerprintId(name)
		if err != nil {
			return nil, err
		}

		instructions := map[byte]engine.Instruction{}
		for _, kwarg := range kwargs {
			letter := string(kwarg[0].(starlark.String))
			if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
				return nil, ErrScriptLetter(letter)
			}
			callable, ok := kwarg[1].(starlark.Callable)
			if !ok {
				return nil, ErrScriptCallable
			}
			instructions[letter[0]] = scripted(name+"."+letter, callable)
		}

		reg.Register(&engine.Table{Name: id, Instructions: instructions})
		ids = append(ids, id)

		return starlark.None, nil
	}

	thread := starlark.Thread{Name: path}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"fingerprint": starlark.NewBuiltin("fingerprint", declare),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, path, src, pred)
	if err != nil {
		err = &ErrScript{Path: path, Err: err}
		return
	}

	return
}

// scripted wraps a Starlark callable as an instruction.
func scripted(name string, fn starlark.Callable) engine.Instruction {
	return func(eng *engine.Engine, ip *engine.IP) bool {
		toss := ip.Stacks.Top()

		elems := make([]starlark.Value, len(toss.Data))
		for n, value := range toss.Data {
			elems[n] = starlark.MakeInt(int(value))
		}
		list := starlark.NewList(elems)

		thread := &starlark.Thread{Name: name}
		thread.SetMaxExecutionSteps(SCRIPT_MAX_STEPS)

		rc, err := starlark.Call(thread, fn, starlark.Tuple{list}, nil)
		if err != nil {
			if eng.Verbose {
				log.Trace().Err(err).Str("instruction", name).Msg("fingerprint: script failed")
			}
			return false
		}

		data := make([]int32, list.Len())
		for n := range data {
			value, ok := list.Index(n).(starlark.Int)
			if !ok {
				return false
			}
			value64, ok := value.Int64()
			if !ok {
				return false
			}
			data[n] = int32(value64)
		}
		toss.Data = data

		return rc != starlark.False
	}
}
