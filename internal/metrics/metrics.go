package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine operation metrics
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spatial_engine_operation_duration_seconds",
			Help:    "Duration of engine operations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spatial_engine_operations_total",
			Help: "Total number of engine operations",
		},
		[]string{"operation", "status"},
	)

	// Scan processing metrics
	PointsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spatial_engine_points_processed_total",
			Help: "Total number of accepted point-cloud points",
		},
	)

	ScanPointsRetained = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spatial_engine_scan_points_retained",
			Help:    "Accepted points per processed frame",
			Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 50000, 100000},
		},
	)

	// Index metrics
	IndexSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spatial_engine_index_size",
			Help: "Number of entries per spatial index",
		},
		[]string{"index"},
	)

	// Transport metrics
	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spatial_engine_active_streams",
			Help: "Number of active proximity streams",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spatial_engine_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Health metrics
	BatteryPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spatial_engine_battery_percent",
			Help: "Last reported device battery percentage",
		},
	)

	UptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spatial_engine_uptime_seconds",
			Help: "Engine uptime in seconds",
		},
	)
)
