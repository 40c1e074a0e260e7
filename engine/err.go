package engine

import (
	"errors"

	"github.com/ezrec/funge/translate"
)

var f = translate.From

var (
	ErrDialectUnknown = errors.New(f("dialect unknown"))
)

// ErrFingerprintName is a fingerprint name that is not one to four
// ASCII characters.
type ErrFingerprintName string

func (err ErrFingerprintName) Error() string {
	return f("fingerprint name '%v' invalid", string(err))
}
