// Package telemetrytest records everything reported through telemetry in memory.
package telemetrytest

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/indigo-web/superhttp/internal/telemetry"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type Recorder struct {
	Reader *sdkmetric.ManualReader
	Spans  *tracetest.SpanRecorder
	logs   *syncBuffer
	opts   telemetry.Options
}

// New returns a recorder together with telemetry reporting into it.
func New(t *testing.T) (*Recorder, *telemetry.Telemetry) {
	r := &Recorder{
		Reader: sdkmetric.NewManualReader(),
		Spans:  tracetest.NewSpanRecorder(),
		logs:   new(syncBuffer),
	}

	r.opts = telemetry.Options{
		Logger: slog.New(slog.NewTextHandler(r.logs, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(r.Reader)),
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(r.Spans)),
	}

	tel, err := telemetry.New(r.opts)
	require.NoError(t, err)

	return r, tel
}

// Options returns the providers the recorder collects from, so other telemetry instances
// can report into it too.
func (r *Recorder) Options() telemetry.Options {
	return r.opts
}

// Sum returns the sum of all the data points of the int64 counter. Only data points having
// all the passed attributes are counted.
func (r *Recorder) Sum(t *testing.T, name string, attrs ...attribute.KeyValue) int64 {
	var rm metricdata.ResourceMetrics
	require.NoError(t, r.Reader.Collect(context.Background(), &rm))

	var total int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)

			for _, dp := range sum.DataPoints {
				if hasAll(dp.Attributes, attrs) {
					total += dp.Value
				}
			}
		}
	}

	return total
}

// Logs returns everything logged so far in the slog text format.
func (r *Recorder) Logs() string {
	return r.logs.String()
}

func hasAll(set attribute.Set, attrs []attribute.KeyValue) bool {
	for _, attr := range attrs {
		value, found := set.Value(attr.Key)
		if !found || value.Emit() != attr.Value.Emit() {
			return false
		}
	}

	return true
}

type syncBuffer struct {
	mu   sync.Mutex
	buff bytes.Buffer
}

func (s *syncBuffer) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buff.Write(b)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buff.String()
}
