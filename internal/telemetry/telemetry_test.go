package telemetry_test

import (
	"context"
	"testing"

	"github.com/indigo-web/superhttp/internal/telemetry"
	"github.com/indigo-web/superhttp/internal/telemetry/telemetrytest"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestTelemetry(t *testing.T) {
	t.Run("instruments", func(t *testing.T) {
		rec, tel := telemetrytest.New(t)
		ctx := context.Background()

		tel.Connections.Add(ctx, 2)
		tel.Active.Add(ctx, 1)
		tel.Active.Add(ctx, -1)
		tel.ParseErrors.Add(ctx, 1)
		tel.Responses.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.response.status_code", 200)))
		tel.Responses.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.response.status_code", 400)))

		require.Equal(t, int64(2), rec.Sum(t, "superhttp.connections"))
		require.Equal(t, int64(0), rec.Sum(t, "superhttp.connections.active"))
		require.Equal(t, int64(1), rec.Sum(t, "superhttp.parse_errors"))
		require.Equal(t, int64(2), rec.Sum(t, "superhttp.responses"))
		require.Equal(t, int64(1), rec.Sum(t, "superhttp.responses", attribute.Int("http.response.status_code", 400)))
	})

	t.Run("logger", func(t *testing.T) {
		rec, tel := telemetrytest.New(t)
		tel.Logger.Info("hello", "who", "world")
		require.Contains(t, rec.Logs(), "msg=hello who=world")
	})

	t.Run("defaults to globals", func(t *testing.T) {
		tel, err := telemetry.New(telemetry.Options{})
		require.NoError(t, err)
		require.NotNil(t, tel.Logger)
		require.NotNil(t, tel.Tracer)
	})

	t.Run("nop", func(t *testing.T) {
		tel := telemetry.Nop()
		tel.Connections.Add(context.Background(), 1)
		tel.Logger.Error("nowhere")
	})
}
