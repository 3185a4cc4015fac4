package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	slotFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_orders",
		Subsystem: "slots",
		Name:      "fallbacks_total",
		Help:      "Total number of preferred slots replaced by a default slot",
	})

	ordersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_orders",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of successfully created orders",
	}, []string{"method"})

	notificationsPublishFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_orders",
		Subsystem: "notifications",
		Name:      "publish_failed_total",
		Help:      "Total number of notification events that failed to publish",
	})
)
