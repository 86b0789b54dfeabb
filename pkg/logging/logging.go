// Package logging provides the structured logging facade used across
// mixcheck. Components hold a Logger scoped with their own fields and
// attach per-call fields for anything request-shaped.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured key/value pairs attached to log entries.
type Fields map[string]any

// Logger is the logging interface components code against.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type zapLogger struct {
	base *zap.Logger
}

var (
	mu         sync.RWMutex
	rootLogger Logger = newZapLogger(zapcore.InfoLevel)
)

func newZapLogger(level zapcore.Level) *zapLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{base: logger}
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(err error, msg string, fields ...Fields) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.base.Error(msg, zf...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{base: l.base.With(zapFields([]Fields{fields})...)}
}

func zapFields(fields []Fields) []zap.Field {
	var zf []zap.Field
	for _, f := range fields {
		for k, v := range f {
			zf = append(zf, zap.Any(k, v))
		}
	}
	return zf
}

// SetLevel reconfigures the package-level logger. Level strings follow
// zap conventions ("debug", "info", "warn", "error"); unknown strings
// fall back to info.
func SetLevel(level string) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()
	rootLogger = newZapLogger(parsed)
}

// NewDefaultLogger returns the package-level logger.
func NewDefaultLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return rootLogger
}

// WithFields returns the package-level logger scoped with fields.
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}
