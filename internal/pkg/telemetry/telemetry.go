// Package telemetry wires OpenTelemetry logs, metrics and traces to OTLP
// exporters over gRPC. Init builds a single Resource for the service,
// registers the global providers and returns a ShutdownFunc that flushes
// and stops all three pipelines.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// InstrumentationName identifies the meters, tracers and loggers created by
// this module.
const InstrumentationName = "github.com/gabapcia/coinflip"

// loggerProvider holds the provider registered by Init. It stays nil when
// telemetry is disabled.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the LoggerProvider registered by Init, or nil when
// Init has not run.
func LoggerProvider() *sdklog.LoggerProvider {
	return loggerProvider.Load()
}

func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	loggerProvider.Store(lp)
	return lp, nil
}

func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default resource with the service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops every provider created by Init.
type ShutdownFunc func(ctx context.Context) error

// Init configures logs, metrics and traces exported over OTLP/gRPC. The
// exporters read their endpoint and credentials from the standard
// OTEL_EXPORTER_OTLP_* environment variables.
//
// Parameters:
//   - ctx: context used while creating the exporters.
//   - serviceName: logical service name attached to every signal.
//
// Returns:
//   - ShutdownFunc: must be called on shutdown so buffered data is exported.
//   - error: non-nil if any provider could not be created. Providers created
//     before the failure are shut down.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, lp.Shutdown(ctx))
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, lp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	return newShutdownFunc(lp, mp, tp), nil
}

func newShutdownFunc(lp *sdklog.LoggerProvider, mp *sdkmetric.MeterProvider, tp *sdktrace.TracerProvider) ShutdownFunc {
	return func(ctx context.Context) error {
		defer loggerProvider.CompareAndSwap(lp, nil)

		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}
}
