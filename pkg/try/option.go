package try

// Option holds a value or nothing.
type Option[V any] struct {
	value   V
	present bool
}

func Some[V any](v V) Option[V] {
	return Option[V]{value: v, present: true}
}

func None[V any]() Option[V] {
	return Option[V]{}
}

func (o Option[V]) IsPresent() bool {
	return o.present
}

func (o Option[V]) IsEmpty() bool {
	return !o.present
}

// Get returns the held value and whether there was one.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.present
}

// MustGet returns the held value. Panics if empty.
func (o Option[V]) MustGet() V {
	if !o.present {
		panic(NoSuchElement.New("option is empty"))
	}
	return o.value
}

func (o Option[V]) OrElse(v V) V {
	if o.present {
		return o.value
	}
	return v
}

// ToOptional is Some(value) for a Success, even a nil one, and None for a Failure.
func (t Try[V]) ToOptional() Option[V] {
	if t.isSuccess {
		return Some(t.value)
	}
	return None[V]()
}

// ToNullableOptional is ToOptional with a nil success value mapped to None.
func (t Try[V]) ToNullableOptional() Option[V] {
	if t.isSuccess && !IsNil(t.value) {
		return Some(t.value)
	}
	return None[V]()
}
