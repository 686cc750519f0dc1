package try

// Supplier produces a value or fails
type Supplier[V any] func() (V, error)

// Function maps T to R or fails
type Function[T, R any] func(T) (R, error)

// Consumer accepts a value and may fail
type Consumer[T any] func(T) error

// Runnable is a zero-argument action that may fail
type Runnable func() error

// Supply lifts a plain producer into a Supplier that never returns an error.
func Supply[V any](f func() V) Supplier[V] {
	return func() (V, error) {
		return f(), nil
	}
}

func Apply[T, R any](f func(T) R) Function[T, R] {
	return func(t T) (R, error) {
		return f(t), nil
	}
}

func Accept[T any](f func(T)) Consumer[T] {
	return func(t T) error {
		f(t)
		return nil
	}
}

func Do(f func()) Runnable {
	return func() error {
		f()
		return nil
	}
}
