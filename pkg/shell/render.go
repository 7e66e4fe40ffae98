package shell

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-stations/pkg/audit"
	"github.com/dd0wney/cluso-stations/pkg/metrics"
	"github.com/dd0wney/cluso-stations/pkg/registry"
)

const emptySlot = "(empty)"

func (s *Shell) slotTable(headers ...string) *table.Table {
	st := s.styles
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...)
}

func (s *Shell) renderStations(slots []registry.StationSlot) string {
	t := s.slotTable("#", "Station")
	for _, slot := range slots {
		name := slot.Name
		if !slot.Occupied {
			name = s.styles.empty.Render(emptySlot)
		}
		t.Row(strconv.Itoa(slot.Index), name)
	}
	return t.String()
}

func (s *Shell) renderConnections(slots []registry.ConnectionSlot) string {
	t := s.slotTable("#", "Station", "Connected to")
	for _, slot := range slots {
		from, to := slot.From, slot.To
		if !slot.Occupied {
			from = s.styles.empty.Render(emptySlot)
			to = ""
		}
		t.Row(strconv.Itoa(slot.Index), from, to)
	}
	return t.String()
}

func (s *Shell) renderActivity(events []*audit.Event, empty string) string {
	if len(events) == 0 {
		return empty
	}
	t := s.slotTable("Time", "Action", "Slot", "Subject", "Result")
	for _, e := range events {
		slot := "-"
		if e.Slot >= 0 {
			slot = strconv.Itoa(e.Slot)
		}
		result := string(e.Status)
		if e.Kind != "" {
			result += " (" + e.Kind + ")"
		}
		t.Row(
			e.Timestamp.Format("15:04:05"),
			fmt.Sprintf("%s %s", e.Action, e.ResourceType),
			slot,
			e.Subject,
			result,
		)
	}
	return t.String()
}

func (s *Shell) renderSamples(samples []metrics.Sample) string {
	t := s.slotTable("Metric", "Value")
	for _, sm := range samples {
		t.Row(sm.Name+sm.Labels, strconv.FormatFloat(sm.Value, 'f', -1, 64))
	}
	return t.String()
}
