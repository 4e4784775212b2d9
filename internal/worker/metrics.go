package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweptOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "reconciler",
		Name:      "swept_orders_total",
		Help:      "Orders moved by timeout sweeps.",
	}, []string{"sweep"})

	sweepErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "reconciler",
		Name:      "sweep_errors_total",
		Help:      "Failures during timeout sweeps, isolated per order.",
	}, []string{"sweep"})
)
