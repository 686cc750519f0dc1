package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnSuccess_RunsOnSuccessOnly(t *testing.T) {
	t.Parallel()

	seen := 0
	s := Successful(11)
	out := s.OnSuccess(func(v int) error {
		seen = v
		return nil
	})
	assert.Equal(t, 11, seen)
	assert.Equal(t, s.Id(), out.Id(), "a passing hook must return the same outcome")

	called := false
	f := Failure[int](errors.New("x"))
	out = f.OnSuccess(func(int) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Equal(t, f.Id(), out.Id())
}

func TestOnSuccess_HookFailureWins(t *testing.T) {
	t.Parallel()

	hookErr := errors.New("hook")
	out := Successful(1).OnSuccess(func(int) error { return hookErr })

	assert.False(t, out.IsSuccessful())
	assert.True(t, out.FailureCause() == hookErr)

	out = Successful(1).OnSuccess(func(int) error { panic("hook panic") })
	var pe *PanicError
	assert.ErrorAs(t, out.FailureCause(), &pe)
}

func TestOnFailure(t *testing.T) {
	t.Parallel()

	err := errors.New("orig")
	var seen error
	f := Failure[int](err)
	out := f.OnFailure(func(e error) error {
		seen = e
		return nil
	})
	assert.True(t, seen == err)
	assert.Equal(t, f.Id(), out.Id())

	hookErr := errors.New("hook")
	out = f.OnFailure(func(error) error { return hookErr })
	assert.True(t, out.FailureCause() == hookErr)

	called := false
	s := Successful(2)
	out = s.OnFailure(func(error) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Equal(t, s.Id(), out.Id())
}

func TestOnUnhandledSuccess_ErrorEscapes(t *testing.T) {
	t.Parallel()

	hookErr := errors.New("X")
	s := Successful(1)
	out, err := s.OnUnhandledSuccess(func(int) error { return hookErr })

	require.Error(t, err)
	assert.True(t, err == hookErr)
	assert.True(t, out.IsSuccessful(), "the outcome itself is left alone")
	assert.Equal(t, s.Id(), out.Id())

	assert.Panics(t, func() {
		_, _ = s.OnUnhandledSuccess(func(int) error { panic("escapes") })
	})
}

func TestOnUnhandledSuccess_NoopOnFailure(t *testing.T) {
	t.Parallel()

	f := Failure[int](errors.New("e"))
	out, err := f.OnUnhandledSuccess(func(int) error { return errors.New("never") })
	require.NoError(t, err)
	assert.Equal(t, f.Id(), out.Id())
}

func TestOnUnhandledFailure(t *testing.T) {
	t.Parallel()

	orig := errors.New("orig")
	hookErr := errors.New("hook")
	f := Failure[string](orig)

	out, err := f.OnUnhandledFailure(func(e error) error {
		assert.True(t, e == orig)
		return hookErr
	})
	assert.True(t, err == hookErr)
	assert.True(t, out.FailureCause() == orig)

	s := Successful("ok")
	out, err = s.OnUnhandledFailure(func(error) error { return hookErr })
	require.NoError(t, err)
	assert.Equal(t, s.Id(), out.Id())
}

func TestHooks_ValidateNilConsumerOnBothVariants(t *testing.T) {
	t.Parallel()

	s := Successful(1)
	f := Failure[int](errors.New("e"))

	cases := map[string]func(){
		"success.OnSuccess":          func() { s.OnSuccess(nil) },
		"failure.OnSuccess":          func() { f.OnSuccess(nil) },
		"success.OnFailure":          func() { s.OnFailure(nil) },
		"failure.OnFailure":          func() { f.OnFailure(nil) },
		"success.OnUnhandledFailure": func() { _, _ = s.OnUnhandledFailure(nil) },
		"failure.OnUnhandledSuccess": func() { _, _ = f.OnUnhandledSuccess(nil) },
		"success.Then":               func() { s.Then(nil) },
	}

	for name, call := range cases {
		r := panicValue(call)
		err, ok := r.(error)
		require.True(t, ok, "%s: expected error panic, got %v", name, r)
		assert.True(t, ErrNilArgument.Has(err), name)
	}
}

func TestThen(t *testing.T) {
	t.Parallel()

	for _, in := range []Try[int]{Successful(1), Failure[int](errors.New("e"))} {
		calls := 0
		out := in.Then(func() error {
			calls++
			return nil
		})
		assert.Equal(t, 1, calls)
		assert.Equal(t, in.Id(), out.Id())

		actionErr := errors.New("action")
		out = in.Then(func() error { return actionErr })
		assert.True(t, out.FailureCause() == actionErr)
	}
}
