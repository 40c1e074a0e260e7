package fingerprint

import (
	"errors"

	"github.com/ezrec/funge/translate"
)

var f = translate.From

var (
	ErrScriptCallable = errors.New(f("fingerprint letter is not callable"))
)

// ErrScript is a failure loading a fingerprint script.
type ErrScript struct {
	Path string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Path, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrScriptLetter is a fingerprint keyword that is not a letter A to Z.
type ErrScriptLetter string

func (err ErrScriptLetter) Error() string {
	return f("'%v' is not a letter A to Z", string(err))
}
