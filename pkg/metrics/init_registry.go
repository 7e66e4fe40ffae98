package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRegistryMetrics() {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "stations_registry_operations_total",
			Help: "Total number of registry operations",
		},
		[]string{"operation", "status"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stations_registry_operation_duration_seconds",
			Help:    "Registry operation duration in seconds",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		},
		[]string{"operation"},
	)

	r.SlotsOccupied = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stations_registry_slots_occupied",
			Help: "Number of occupied slots per collection",
		},
		[]string{"collection"},
	)

	r.SlotsCapacity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stations_registry_slots_capacity",
			Help: "Number of slots per collection",
		},
		[]string{"collection"},
	)

	r.CascadeRemovals = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "stations_registry_cascade_removals_total",
			Help: "Connections removed because one of their stations was deleted",
		},
	)
}
