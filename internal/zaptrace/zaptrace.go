/*
Package zaptrace implements a tracing adapter for go.uber.org/zap.

The adapter is registered with schuko's tracing package under the key "zap"
by calling Register. Tracers created by the adapter write human-readable
console lines to stderr, unless redirected with SetOutput.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package zaptrace

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Key is the adapter's key for schuko's tracing configuration.
const Key = "zap"

// Tracer is a tracing.Trace backed by a zap logger.
type Tracer struct {
	level *zap.AtomicLevel
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

var _ tracing.Trace = (*Tracer)(nil)

// New creates a tracer writing to w at trace level error. If w is nil, output
// goes to stderr.
func New(w io.Writer) *Tracer {
	level := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	t := &Tracer{level: &level}
	t.SetOutput(w)
	return t
}

// GetAdapter returns an adapter for schuko's tracing package.
func GetAdapter() tracing.Adapter {
	return func() tracing.Trace {
		return New(nil)
	}
}

// Register makes the adapter available under Key.
func Register() {
	tracing.RegisterTraceAdapter(Key, GetAdapter(), false)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = zapcore.OmitKey
	return cfg
}

// SetOutput redirects trace output to w. Fields added with P are not carried
// over.
func (t *Tracer) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(w),
		t.level,
	)
	t.base = zap.New(core)
	t.sugar = t.base.Sugar()
}

// Errorf traces at level error.
func (t *Tracer) Errorf(format string, args ...interface{}) {
	t.sugar.Errorf(format, args...)
}

// Infof traces at level info.
func (t *Tracer) Infof(format string, args ...interface{}) {
	t.sugar.Infof(format, args...)
}

// Debugf traces at level debug.
func (t *Tracer) Debugf(format string, args ...interface{}) {
	t.sugar.Debugf(format, args...)
}

// P returns a tracer adding a field to every trace line. The returned tracer
// shares the trace level with t.
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &Tracer{
		level: t.level,
		base:  t.base,
		sugar: t.sugar.With(key, fmt.Sprint(val)),
	}
}

// SetTraceLevel maps schuko's trace levels to zap levels.
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	switch l {
	case tracing.LevelDebug:
		t.level.SetLevel(zapcore.DebugLevel)
	case tracing.LevelInfo:
		t.level.SetLevel(zapcore.InfoLevel)
	default:
		t.level.SetLevel(zapcore.ErrorLevel)
	}
}

// GetTraceLevel returns the current trace level.
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	switch {
	case t.level.Enabled(zapcore.DebugLevel):
		return tracing.LevelDebug
	case t.level.Enabled(zapcore.InfoLevel):
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// Sync flushes buffered output.
func (t *Tracer) Sync() error {
	return t.base.Sync()
}
