package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	RecordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "Total records persisted per entity",
		},
		[]string{"entity"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Admin email notifications by outcome",
		},
		[]string{"kind", "outcome"},
	)
)
