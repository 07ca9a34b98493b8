package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "worker_ticks_total", Help: "Ticks received over gRPC"},
		[]string{"symbol"},
	)
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "worker_signals_total", Help: "Signals returned, by action"},
		[]string{"symbol", "action"},
	)
	StrategyErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "worker_strategy_errors_total", Help: "Strategy failures answered with HOLD"},
	)
	AuthRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "worker_auth_rejected_total", Help: "Calls rejected by the license interceptor"},
	)
	TickSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "worker_tick_seconds", Help: "OnTick handling latency"},
	)
)

func init() {
	prometheus.MustRegister(TicksTotal, SignalsTotal, StrategyErrorsTotal, AuthRejectedTotal, TickSeconds)
}
