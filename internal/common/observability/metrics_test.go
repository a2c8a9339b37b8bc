package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordCall_ExportsCounterAndHistogram(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	obs := newWithProvider(provider, "test")

	obs.RecordCall(context.Background(), "ok", 120*time.Millisecond)
	obs.RecordCall(context.Background(), "error", 10*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = true
		if m.Name == "upstream.calls" {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			assert.Equal(t, int64(2), total)
		}
	}
	assert.True(t, names["upstream.calls"])
	assert.True(t, names["upstream.duration"])

	obs.Shutdown()
}

func TestNoop_IsSafe(t *testing.T) {
	obs := NewNoop()
	obs.RecordCall(context.Background(), "ok", time.Second)
	obs.Shutdown()

	var nilObs *Observability
	nilObs.RecordCall(context.Background(), "ok", time.Second)
	nilObs.Shutdown()
}
