package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level collectors registered through promauto, so importing any
// voltgraph package is enough to expose them on the default registry.

var (
	// TraversalsTotal counts BFS launches, labeled by terminal status class.
	TraversalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltgraph_traversals_total",
			Help: "Total number of BFS traversal launches",
		},
		[]string{"status"},
	)

	// TraversalDuration measures kernel wall time per launch.
	// Buckets span microsecond toy graphs to multi-second road networks.
	TraversalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voltgraph_traversal_duration_seconds",
			Help:    "Wall time of BFS kernel execution",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
	)

	// DeviceBytesInUse tracks the accounted device memory currently allocated.
	DeviceBytesInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "voltgraph_device_bytes_in_use",
			Help: "Device memory currently allocated, in bytes",
		},
	)

	// DeviceAllocsTotal counts device buffer allocations.
	DeviceAllocsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voltgraph_device_allocs_total",
			Help: "Total number of device buffer allocations",
		},
	)
)
