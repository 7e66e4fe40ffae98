package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"
)

// RecordOperation records a registry operation
func (r *Registry) RecordOperation(operation, status string, duration time.Duration) {
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCascade records connections removed by a station deletion
func (r *Registry) RecordCascade(removed int) {
	if removed > 0 {
		r.CascadeRemovals.Add(float64(removed))
	}
}

// UpdateOccupancy sets the occupancy and capacity gauges
func (r *Registry) UpdateOccupancy(stations, stationCap, connections, connectionCap int) {
	r.SlotsOccupied.WithLabelValues(CollectionStations).Set(float64(stations))
	r.SlotsOccupied.WithLabelValues(CollectionConnections).Set(float64(connections))
	r.SlotsCapacity.WithLabelValues(CollectionStations).Set(float64(stationCap))
	r.SlotsCapacity.WithLabelValues(CollectionConnections).Set(float64(connectionCap))
}

// Snapshot gathers counters and gauges into a flat, sorted list. Histograms
// are reported as their sample count.
func (r *Registry) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: formatLabels(m.GetLabel())}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Name += "_count"
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, s)
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
