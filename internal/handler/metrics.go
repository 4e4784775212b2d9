package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var paymentCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eatery",
	Subsystem: "payment",
	Name:      "callbacks_total",
	Help:      "Payment provider callbacks by outcome.",
}, []string{"result"})
