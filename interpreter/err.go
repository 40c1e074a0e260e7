package interpreter

import (
	"github.com/ezrec/funge/translate"
)

var f = translate.From

// ErrLoad is a failure to read a source file.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("load %v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrConfig is a failure to read or apply a configuration.
type ErrConfig struct {
	Err error
}

func (err *ErrConfig) Error() string {
	return f("config: %v", err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
