package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.OperationsTotal == nil {
		t.Error("OperationsTotal not initialized")
	}
	if r.SlotsOccupied == nil {
		t.Error("SlotsOccupied not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}

	// Two registries must not share collectors
	NewRegistry().RecordOperation("AddStation", StatusSuccess, time.Microsecond)
}

func TestRecordOperation(t *testing.T) {
	r := NewRegistry()

	r.RecordOperation("AddStation", StatusSuccess, 10*time.Microsecond)
	r.RecordOperation("AddStation", StatusSuccess, 20*time.Microsecond)
	r.RecordOperation("AddStation", "duplicate_name", 5*time.Microsecond)

	successCounter, err := r.OperationsTotal.GetMetricWithLabelValues("AddStation", StatusSuccess)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := successCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Success counter = %v, want 2", metric.Counter.GetValue())
	}

	failCounter, err := r.OperationsTotal.GetMetricWithLabelValues("AddStation", "duplicate_name")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := failCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("Failure counter = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordCascade(t *testing.T) {
	r := NewRegistry()

	r.RecordCascade(0)
	r.RecordCascade(2)
	r.RecordCascade(1)

	var metric dto.Metric
	if err := r.CascadeRemovals.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 3 {
		t.Errorf("CascadeRemovals = %v, want 3", metric.Counter.GetValue())
	}
}

func TestUpdateOccupancy(t *testing.T) {
	r := NewRegistry()
	r.UpdateOccupancy(2, 5, 1, 6)

	tests := []struct {
		vec  string
		coll string
		want float64
	}{
		{"occupied", CollectionStations, 2},
		{"occupied", CollectionConnections, 1},
		{"capacity", CollectionStations, 5},
		{"capacity", CollectionConnections, 6},
	}

	for _, tt := range tests {
		t.Run(tt.vec+"/"+tt.coll, func(t *testing.T) {
			vec := r.SlotsOccupied
			if tt.vec == "capacity" {
				vec = r.SlotsCapacity
			}
			var metric dto.Metric
			if err := vec.WithLabelValues(tt.coll).Write(&metric); err != nil {
				t.Fatalf("Failed to write metric: %v", err)
			}
			if metric.Gauge.GetValue() != tt.want {
				t.Errorf("gauge = %v, want %v", metric.Gauge.GetValue(), tt.want)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.RecordOperation("DeleteStation", StatusSuccess, time.Microsecond)
	r.RecordCascade(1)
	r.UpdateOccupancy(0, 5, 0, 6)

	samples, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	byKey := make(map[string]float64)
	for _, s := range samples {
		byKey[s.Name+s.Labels] = s.Value
	}

	want := map[string]float64{
		`stations_registry_operations_total{operation="DeleteStation",status="success"}`: 1,
		`stations_registry_operation_duration_seconds_count{operation="DeleteStation"}`:  1,
		`stations_registry_cascade_removals_total`:                                      1,
		`stations_registry_slots_capacity{collection="connections"}`:                    6,
	}
	for k, v := range want {
		got, ok := byKey[k]
		if !ok {
			t.Errorf("missing sample %s", k)
			continue
		}
		if got != v {
			t.Errorf("%s = %v, want %v", k, got, v)
		}
	}

	for i := 1; i < len(samples); i++ {
		if samples[i-1].Name > samples[i].Name {
			t.Fatalf("samples not sorted at %d: %s > %s", i, samples[i-1].Name, samples[i].Name)
		}
	}
}
