package try

// OnSuccess runs consumer with the value of a Success. If the consumer
// fails, its error replaces the outcome.
func (t Try[V]) OnSuccess(consumer Consumer[V]) Try[V] {
	requireFunc(consumer, "consumer")

	if !t.isSuccess {
		return t
	}
	if err := accept(consumer, t.value); err != nil {
		return Failure[V](err)
	}
	return t
}

// OnFailure runs consumer with the error of a Failure. If the consumer
// fails, its error replaces the outcome.
func (t Try[V]) OnFailure(consumer Consumer[error]) Try[V] {
	requireFunc(consumer, "consumer")

	if t.isSuccess {
		return t
	}
	if err := accept(consumer, t.cause()); err != nil {
		return Failure[V](err)
	}
	return t
}

// OnUnhandledSuccess runs consumer with the value of a Success and hands its
// error back to the caller instead of folding it into the outcome. Panics are
// not recovered.
func (t Try[V]) OnUnhandledSuccess(consumer Consumer[V]) (Try[V], error) {
	requireFunc(consumer, "consumer")

	if !t.isSuccess {
		return t, nil
	}
	return t, consumer(t.value)
}

func (t Try[V]) OnUnhandledFailure(consumer Consumer[error]) (Try[V], error) {
	requireFunc(consumer, "consumer")

	if t.isSuccess {
		return t, nil
	}
	return t, consumer(t.cause())
}

// Then runs action whatever the variant. The outcome is kept unless the action fails.
func (t Try[V]) Then(action Runnable) Try[V] {
	requireFunc(action, "action")

	if err := run(action); err != nil {
		return Failure[V](err)
	}
	return t
}

func accept[T any](consumer Consumer[T], v T) (err error) {
	defer catch(&err)
	return consumer(v)
}
