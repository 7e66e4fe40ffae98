package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collection label values.
const (
	CollectionStations    = "stations"
	CollectionConnections = "connections"
)

// Status label value for operations that succeeded. Failures use the
// failure kind name instead.
const StatusSuccess = "success"

// Registry holds all metrics for the station registry
type Registry struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	SlotsOccupied     *prometheus.GaugeVec
	SlotsCapacity     *prometheus.GaugeVec
	CascadeRemovals   prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
// Each Registry owns its own prometheus.Registry so tests never collide.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initRegistryMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}
