package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the success payload of computations that produce no value.
type Unit = struct{}

// Try is the outcome of a fallible computation: a Success holding a value
// or a Failure holding the captured error. Instances are immutable.
type Try[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       error
	isSuccess bool
}

func Successful[V any](v V) Try[V] {
	return Try[V]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed outcome. A nil err is replaced with ErrNilCause.
func Failure[V any](err error) Try[V] {
	return Try[V]{
		err:       causeOrNil(err),
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// To runs supplier and captures its outcome. Both returned errors and
// panics of any kind become a Failure; panics are held as *PanicError.
func To[V any](supplier Supplier[V]) Try[V] {
	requireFunc(supplier, "supplier")

	v, err := call(supplier)
	if err != nil {
		return Failure[V](err)
	}
	return Successful(v)
}

// Run is To for actions without a result.
func Run(action Runnable) Try[Unit] {
	requireFunc(action, "action")

	if err := run(action); err != nil {
		return Failure[Unit](err)
	}
	return Successful(Unit{})
}

// FromResult lifts a conventional (value, error) pair.
func FromResult[V any](v V, err error) Try[V] {
	if err != nil {
		return Failure[V](err)
	}
	return Successful(v)
}

func call[V any](supplier Supplier[V]) (v V, err error) {
	defer catch(&err)
	return supplier()
}

func run(action Runnable) (err error) {
	defer catch(&err)
	return action()
}

func (t Try[V]) IsSuccessful() bool {
	return t.isSuccess
}

// IsZero reports whether t was declared rather than constructed.
func (t Try[V]) IsZero() bool {
	return t.id == uuid.Nil
}

func (t Try[V]) Id() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Try[V]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[V]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.cause())
}

// cause is the held error, with the zero Try treated as a Failure of ErrNilCause.
func (t Try[V]) cause() error {
	return causeOrNil(t.err)
}

// propagate moves the held error into a Try of another type.
func propagate[V, R any](t Try[V]) Try[R] {
	return Failure[R](t.cause())
}
