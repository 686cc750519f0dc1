package try

// Filter keeps a Success whose value satisfies predicate and turns any other
// Success into a NoSuchElement Failure. A Failure is returned as is.
func (t Try[V]) Filter(predicate func(V) bool) Try[V] {
	requireFunc(predicate, "predicate")

	if !t.isSuccess {
		return t
	}
	if predicate(t.value) {
		return t
	}
	return Failure[V](NoSuchElement.New("predicate does not match for %v", t.value))
}

// Map applies fn to the value of a Success. A Failure propagates its
// original error and fn is never called.
func Map[V, R any](t Try[V], fn Function[V, R]) Try[R] {
	requireFunc(fn, "function")

	if !t.isSuccess {
		return propagate[V, R](t)
	}

	r, err := apply(fn, t.value)
	if err != nil {
		return Failure[R](err)
	}
	return Successful(r)
}

// FlatMap is Map for functions that already return a Try. Their outcome is
// returned without further wrapping.
func FlatMap[V, R any](t Try[V], fn Function[V, Try[R]]) Try[R] {
	requireFunc(fn, "function")

	if !t.isSuccess {
		return propagate[V, R](t)
	}

	r, err := apply(fn, t.value)
	if err != nil {
		return Failure[R](err)
	}
	if r.IsZero() {
		return Failure[R](ErrNilCause)
	}
	return r
}

func (t Try[V]) Map(fn Function[V, V]) Try[V] {
	return Map(t, fn)
}

func (t Try[V]) FlatMap(fn Function[V, Try[V]]) Try[V] {
	return FlatMap(t, fn)
}

func apply[T, R any](fn Function[T, R], v T) (r R, err error) {
	defer catch(&err)
	return fn(v)
}
