// Package telemetry holds the logger, meters and tracer the server reports through. They
// are all OpenTelemetry-backed and default to the global providers, so nothing is exported
// unless the application configures an SDK (see Setup).
package telemetry

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const ScopeName = "github.com/indigo-web/superhttp"

// Options override the providers. Zero values fall back to the otel globals.
type Options struct {
	// Logger replaces the otelslog bridge logger.
	Logger         *slog.Logger
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

type Telemetry struct {
	Logger *slog.Logger
	Tracer trace.Tracer
	// Connections counts accepted connections.
	Connections metric.Int64Counter
	// Active is the number of connections being served right now.
	Active metric.Int64UpDownCounter
	// Responses counts written responses by their status code.
	Responses metric.Int64Counter
	// ParseErrors counts requests rejected as malformed.
	ParseErrors metric.Int64Counter
}

func New(opts Options) (*Telemetry, error) {
	if opts.Logger == nil {
		opts.Logger = otelslog.NewLogger(ScopeName)
	}

	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}

	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	meter := opts.MeterProvider.Meter(ScopeName)
	t := &Telemetry{
		Logger: opts.Logger,
		Tracer: opts.TracerProvider.Tracer(ScopeName),
	}

	var err error
	t.Connections, err = meter.Int64Counter("superhttp.connections",
		metric.WithDescription("The number of accepted connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}

	t.Active, err = meter.Int64UpDownCounter("superhttp.connections.active",
		metric.WithDescription("The number of connections being served"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}

	t.Responses, err = meter.Int64Counter("superhttp.responses",
		metric.WithDescription("The number of written responses by status code"),
		metric.WithUnit("{response}"))
	if err != nil {
		return nil, err
	}

	t.ParseErrors, err = meter.Int64Counter("superhttp.parse_errors",
		metric.WithDescription("The number of requests rejected as malformed"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Nop returns instruments which report nothing and a logger writing nowhere.
func Nop() *Telemetry {
	t, err := New(Options{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		MeterProvider:  metricnoop.NewMeterProvider(),
		TracerProvider: tracenoop.NewTracerProvider(),
	})
	if err != nil {
		// noop meters never fail
		panic(err)
	}

	return t
}
