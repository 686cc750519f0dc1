package try

import (
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors created by this package itself.
	Error = errs.Class("try")

	// NoSuchElement marks a Success rejected by Filter.
	NoSuchElement = errs.Class("no such element")

	// ErrNilArgument marks a nil function handed to an operation. It is raised as a panic.
	ErrNilArgument = errs.Class("nil argument")

	// ErrNilCause replaces a nil error given as a failure cause, so a Failure never holds nil.
	ErrNilCause = Error.New("nil failure cause")
)

// PanicError is the captured form of a panic raised inside a guarded computation.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("try: panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// UncheckedError is the panic payload of MustGet on a Failure.
type UncheckedError struct {
	Cause error
}

func (e *UncheckedError) Error() string {
	return fmt.Sprintf("try: unchecked failure: %v", e.Cause)
}

func (e *UncheckedError) Unwrap() error {
	return e.Cause
}

func requireFunc(f any, name string) {
	if IsNil(f) {
		panic(ErrNilArgument.New("%s must not be nil", name))
	}
}

func causeOrNil(err error) error {
	if err == nil {
		return ErrNilCause
	}
	return err
}
