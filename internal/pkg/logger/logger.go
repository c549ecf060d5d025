// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring log level via functional
// options, emits JSON logs to stdout, adds an OTEL bridge core when a telemetry
// logger provider is available, and correlates entries with the active span.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/zapland/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type for the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey stores a logger enriched through Derive.
	ctxKey = ctxKeyType{}
)

// config holds configuration options for the logger.
type config struct {
	level  string    // the minimum log level (debug, info, warn, error, panic, fatal)
	output io.Writer // destination of the JSON encoded entries
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects JSON entries to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. By default, it logs JSON to stdout at
// the "info" level. If an OpenTelemetry LoggerProvider is registered via
// telemetry.LoggerProvider(), this adds an OTEL bridge core to forward logs to
// the telemetry backend. Calling Init multiple times has no effect after the
// first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/zapland", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) with the
// given key/value pairs and, when ctx carries a valid span, its trace and span IDs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger carries the given key/value pairs
// on every entry logged through it.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

// log writes msg at level using the logger derived from ctx.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
