package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "engine",
		Name:      "orders_submitted_total",
		Help:      "Total number of submitted orders.",
	})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "engine",
		Name:      "transitions_total",
		Help:      "Total number of committed order state transitions.",
	}, []string{"to_status"})

	refundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "engine",
		Name:      "refunds_total",
		Help:      "Total number of successful refund requests.",
	})

	forcedCompletions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "engine",
		Name:      "forced_completions_total",
		Help:      "Deliveries auto-completed by the reconciler after the deadline.",
	})
)
