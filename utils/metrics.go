package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "velora_orders_created_total",
		Help: "Orders created, by payment method.",
	}, []string{"method"})

	CheckoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "velora_checkout_failures_total",
		Help: "Checkout requests that ended in a generic failure.",
	})

	SnapshotsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "velora_collection_snapshots_total",
		Help: "Full-collection snapshots emitted to subscribers.",
	}, []string{"collection"})
)
