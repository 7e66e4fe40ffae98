package registry

import (
	"fmt"
)

const (
	// DefaultStationCapacity is the number of station slots.
	DefaultStationCapacity = 5
	// DefaultConnectionCapacity is the number of connection slots.
	DefaultConnectionCapacity = 6
)

// Config sizes the two slot collections.
type Config struct {
	StationCapacity    int
	ConnectionCapacity int
}

// DefaultConfig returns the 5 station / 6 connection layout.
func DefaultConfig() Config {
	return Config{
		StationCapacity:    DefaultStationCapacity,
		ConnectionCapacity: DefaultConnectionCapacity,
	}
}

// StationSlot is a copy of one station slot.
type StationSlot struct {
	Index    int    `json:"index"`
	Name     string `json:"name,omitempty"`
	Occupied bool   `json:"occupied"`
}

// ConnectionSlot is a copy of one connection slot. From and To keep the
// spelling the caller used when the connection was added.
type ConnectionSlot struct {
	Index    int    `json:"index"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Occupied bool   `json:"occupied"`
}

// String renders the slot as "from - to", or "" when empty.
func (c ConnectionSlot) String() string {
	if !c.Occupied {
		return ""
	}
	return fmt.Sprintf("%s - %s", c.From, c.To)
}

// Result describes a successful mutation.
type Result struct {
	Op      string           `json:"op"`
	Index   int              `json:"index"`
	Name    string           `json:"name,omitempty"`
	From    string           `json:"from,omitempty"`
	To      string           `json:"to,omitempty"`
	Removed []ConnectionSlot `json:"removed,omitempty"`
	Message string           `json:"message"`
}

// Stats holds occupancy for both collections.
type Stats struct {
	Stations           int
	StationCapacity    int
	Connections        int
	ConnectionCapacity int
}

// station and connection are the arena entries; a nil pointer is an empty slot.
type station struct {
	name string
}

type connection struct {
	from string
	to   string
}
