// Package try provides Try[V], the outcome of a fallible computation held as a
// value: a Success with a value or a Failure with the captured error.
//
// Highlights:
// - To/Run: capture a computation, including its panics, as a Try
// - Successful/Failure/FromResult: construct a Try directly
// - Get/MustGet/FailureCause: inspect an outcome
// - OnSuccess/OnFailure/Then: side effects whose errors become the outcome
// - OnUnhandledSuccess/OnUnhandledFailure: side effects whose errors escape to the caller
// - Filter/Map/FlatMap: transform a Success, propagate a Failure untouched
// - Recover/RecoverWith/OrElse/OrElseTry/OrElseRun/OrElseError: fall back from a Failure
// - ToOptional/ToNullableOptional: drop the error and keep an Option
// - Fold: reduce to a concrete value via success/failure handlers
//
// Computations are passed as Supplier, Function, Consumer and Runnable, which
// are plain Go functions returning an error. Supply, Apply, Accept and Do
// adapt functions that cannot fail.
package try
