// Package logger exposes a process-wide sugared zap logger. Log calls take a
// context so that fields attached with Derive, plus the trace and span
// identifiers of the active OpenTelemetry span, end up on every entry.
// Entries are written as JSON to stdout and, when telemetry registered a
// LoggerProvider, forwarded through the otelzap bridge.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/coinflip/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

var (
	ctxKey = ctxKeyType{}

	baseLogger         *zap.SugaredLogger
	initBaseLoggerOnce sync.Once

	nopLogger = zap.NewNop().Sugar()
)

// Init builds the global logger at the given minimum level (debug, info,
// warn, error, panic, fatal). Only the first successful call has an effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(telemetry.InstrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() error {
	return baseLogger.Sync()
}

// base returns the global logger, or a no-op logger before Init.
func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}

	return baseLogger
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) with
// the trace identifiers of ctx and the given key/value pairs attached.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = base()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a copy of ctx carrying a logger with the given fields.
// Every later log call made with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = base()
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs msg at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs msg at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs msg at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs msg at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs msg and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs msg and then calls os.Exit(1).
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
