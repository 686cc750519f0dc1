// Package trylog adapts zap logging to the hook operations of package try.
// Loggers travel in the context, as in the rest of the module.
package trylog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/try3/internal/logging"
	"github.com/ib-77/try3/pkg/try"
)

// ContextWithLogger stores z in ctx for the adapters below. A nil z stores
// the environment-configured default logger.
func ContextWithLogger(ctx context.Context, z *zap.Logger) context.Context {
	return logging.Wrap(z).GetContext(ctx)
}

// Failures returns a consumer for OnFailure that logs the captured error at
// error level. It never fails, so the outcome is left untouched.
func Failures(ctx context.Context, msg string) try.Consumer[error] {
	log := logging.FromContext(ctx)
	return func(err error) error {
		log.Error(msg, logging.Error(err))
		return nil
	}
}

// Successes returns a consumer for OnSuccess that logs the value at debug level.
func Successes[V any](ctx context.Context, msg string) try.Consumer[V] {
	log := logging.FromContext(ctx)
	return func(v V) error {
		log.Debug(msg, logging.Any("value", v))
		return nil
	}
}

// Log writes one entry describing o: info for a Success, warn for a Failure.
func Log[V any](ctx context.Context, o try.Outcome[V], msg string) {
	log := logging.FromContext(ctx).With(
		logging.ID("try_id", o.Id()),
		logging.Time("created_at", o.CreatedAt()),
		logging.Int("age_ms", time.Since(o.CreatedAt()).Milliseconds()),
		logging.Bool("success", o.IsSuccessful()),
	)

	if o.IsSuccessful() {
		v, _ := o.Get()
		log.Info(msg, logging.Any("value", v))
		return
	}
	log.Warn(msg, logging.Error(o.FailureCause()))
}
