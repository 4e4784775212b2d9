package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcastDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "notify",
		Name:      "broadcast_deliveries_total",
		Help:      "Notifications delivered to operator sessions.",
	})

	broadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eatery",
		Subsystem: "notify",
		Name:      "broadcast_failures_total",
		Help:      "Notification writes that failed and evicted the session.",
	})
)
