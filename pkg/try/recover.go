package try

// Recover returns the value of a Success, or fn applied to the captured
// error of a Failure. fn is not guarded: a panic in it reaches the caller.
func (t Try[V]) Recover(fn func(error) V) V {
	requireFunc(fn, "function")

	if t.isSuccess {
		return t.value
	}
	return fn(t.cause())
}

// RecoverWith replaces a Failure with the outcome fn builds from its error.
func (t Try[V]) RecoverWith(fn Function[error, Try[V]]) Try[V] {
	requireFunc(fn, "function")

	if t.isSuccess {
		return t
	}

	r, err := apply(fn, t.cause())
	if err != nil {
		return Failure[V](err)
	}
	if r.IsZero() {
		return Failure[V](ErrNilCause)
	}
	return r
}

func (t Try[V]) OrElse(v V) V {
	if t.isSuccess {
		return t.value
	}
	return v
}

// OrElseTry attempts supplier when t is a Failure.
func (t Try[V]) OrElseTry(supplier Supplier[V]) Try[V] {
	requireFunc(supplier, "supplier")

	if t.isSuccess {
		return t
	}
	return To(supplier)
}

// OrElseRun attempts action when t is a Failure. A successful action yields
// a Success holding the zero value of V.
func (t Try[V]) OrElseRun(action Runnable) Try[V] {
	requireFunc(action, "action")

	if t.isSuccess {
		return t
	}

	r := Run(action)
	if !r.isSuccess {
		return propagate[Unit, V](r)
	}
	var zero V
	return Successful(zero)
}

// OrElseError returns the value of a Success, or the error built by
// errSupplier for a Failure. The captured error is dropped unless
// errSupplier wraps it.
func (t Try[V]) OrElseError(errSupplier func() error) (V, error) {
	requireFunc(errSupplier, "error supplier")

	if t.isSuccess {
		return t.value, nil
	}
	var zero V
	return zero, causeOrNil(errSupplier())
}
