package monitor

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// Every worker metric must be registered on the default registry.
func TestMetricsRegistered(t *testing.T) {
	TicksTotal.WithLabelValues("BTCUSDT").Inc()
	SignalsTotal.WithLabelValues("BTCUSDT", "BUY").Inc()
	StrategyErrorsTotal.Inc()
	AuthRejectedTotal.Inc()
	TickSeconds.Observe(0.001)

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	want := map[string]bool{
		"worker_ticks_total":           false,
		"worker_signals_total":         false,
		"worker_strategy_errors_total": false,
		"worker_auth_rejected_total":   false,
		"worker_tick_seconds":          false,
	}
	for _, mf := range mfs {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("%s metric not found", name)
		}
	}
}
