package logging

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func Time[S ~string](key S, t time.Time) Field {
	return zap.Time(string(key), t)
}

func Any[S ~string](key S, v any) Field {
	return zap.Any(string(key), v)
}

func Int[S ~string, T constraints.Signed](key S, v T) Field {
	return zap.Int64(string(key), int64(v))
}

func Bool[S ~string](key S, v bool) Field {
	return zap.Bool(string(key), v)
}

func ID[S ~string](key S, id uuid.UUID) Field {
	return zap.Stringer(string(key), id)
}

func Error(err error) Field {
	return zap.Error(err)
}
