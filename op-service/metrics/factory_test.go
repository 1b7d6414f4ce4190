package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestFactoryDocumentsMetrics(t *testing.T) {
	registry := NewRegistry()
	factory := With(registry)
	factory.NewCounter(prometheus.CounterOpts{
		Namespace: "op_test",
		Name:      "things_total",
		Help:      "Things",
	})
	factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "op_test",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Depth",
	}, []string{"name"})

	require.Equal(t, []DocumentedMetric{
		{Type: "counter", Name: "op_test_things_total", Help: "Things"},
		{Type: "gauge", Name: "op_test_queue_depth", Help: "Depth", Labels: []string{"name"}},
	}, factory.Document())
}

func TestCLIConfigCheck(t *testing.T) {
	cfg := DefaultCLIConfig()
	require.NoError(t, cfg.Check())
	cfg.Enabled = true
	cfg.ListenPort = 70000
	require.ErrorIs(t, cfg.Check(), ErrInvalidPort)
}
