package logging

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	environmentEnv = "GO_ENVIRONMENT"
	levelEnv       = "TRY_LOG_LEVEL"
)

type Field = zapcore.Field

type loggerCtxKey struct{}

// Logger wraps a zap logger. The zero value is not usable; use New,
// Wrap or FromContext.
type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

func production() bool {
	return os.Getenv(environmentEnv) == "production"
}

func level() (zapcore.Level, bool) {
	raw := strings.TrimSpace(os.Getenv(levelEnv))
	if raw == "" {
		return zapcore.InfoLevel, false
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

func defaultLogger() *zap.Logger {
	var cfg zap.Config
	if production() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	if lvl, ok := level(); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	return logger
}

// New returns the process-wide logger, building it from the environment on first use.
func New() *Logger {
	logOnce.Do(func() {
		cachedLogger = &Logger{log: defaultLogger()}
	})
	return cachedLogger
}

// Wrap adapts an existing zap logger. A nil logger yields New().
func Wrap(z *zap.Logger) *Logger {
	if z == nil {
		return New()
	}
	return &Logger{log: z.WithOptions(zap.AddCallerSkip(1))}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return New()
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
