package num

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by errors.Is against the payload of the panic
// raised when a deliberately unimplemented contract member is called.
var ErrUnsupported = errors.New("operation is not supported")

// UnsupportedOpError reports a call to a contract member that has no sound
// implementation (Inv, Abs, PowSelf, PowMod everywhere; WrapDiv on the secret
// family). The default outcome is an immediate halt of the run; an embedding
// harness that prefers to continue can recover the panic and match the value
// with errors.Is(err, ErrUnsupported).
type UnsupportedOpError struct {
	Op   string
	Type string
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("secint: %s is not supported on %s", e.Op, e.Type)
}

func (e *UnsupportedOpError) Unwrap() error {
	return ErrUnsupported
}

// Unsupported returns the value an unsupported contract member panics with.
func Unsupported(op, typ string) error {
	return &UnsupportedOpError{Op: op, Type: typ}
}
