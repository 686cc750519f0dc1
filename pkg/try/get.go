package try

// Get returns the value of a Success, or the zero value and the
// captured error, unchanged, of a Failure.
func (t Try[V]) Get() (V, error) {
	if t.isSuccess {
		return t.value, nil
	}
	var zero V
	return zero, t.cause()
}

// MustGet returns the value of a Success and panics with an *UncheckedError
// wrapping the captured error otherwise.
func (t Try[V]) MustGet() V {
	if !t.isSuccess {
		panic(&UncheckedError{Cause: t.cause()})
	}
	return t.value
}

// FailureCause returns the captured error, or nil for a Success.
func (t Try[V]) FailureCause() error {
	if t.isSuccess {
		return nil
	}
	return t.cause()
}

// Fold collapses t into a single value through the handler matching its variant.
func Fold[V, R any](t Try[V], onSuccess func(V) R, onFailure func(error) R) R {
	requireFunc(onSuccess, "onSuccess")
	requireFunc(onFailure, "onFailure")

	if t.isSuccess {
		return onSuccess(t.value)
	}
	return onFailure(t.cause())
}
