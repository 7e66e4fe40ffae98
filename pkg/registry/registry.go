// Package registry holds the station and connection slot collections.
//
// Both collections have a fixed capacity. Deleting an entry empties its slot
// without compacting, so indices stay stable until a later insertion reuses
// the lowest empty slot. A Registry is not safe for concurrent use.
package registry

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-stations/pkg/validation"
)

// Registry owns the station and connection slots.
type Registry struct {
	stations    []*station
	connections []*connection
}

// New creates an empty registry sized by cfg.
func New(cfg Config) (*Registry, error) {
	err := validation.NewConfigValidator("RegistryConfig").
		Positive("StationCapacity", cfg.StationCapacity).
		Positive("ConnectionCapacity", cfg.ConnectionCapacity).
		Validate()
	if err != nil {
		return nil, err
	}

	return &Registry{
		stations:    make([]*station, cfg.StationCapacity),
		connections: make([]*connection, cfg.ConnectionCapacity),
	}, nil
}

// NewDefault creates an empty registry with DefaultConfig.
func NewDefault() *Registry {
	r, _ := New(DefaultConfig())
	return r
}

// StationCapacity returns the number of station slots.
func (r *Registry) StationCapacity() int {
	return len(r.stations)
}

// ConnectionCapacity returns the number of connection slots.
func (r *Registry) ConnectionCapacity() int {
	return len(r.connections)
}

// AddStation stores the normalized form of rawName in the first empty slot.
func (r *Registry) AddStation(rawName string) (Result, error) {
	const op = "AddStation"
	name := Normalize(rawName)

	if err := validation.ValidateStationName(name); err != nil {
		return Result{}, NewError(op).Station().Name(rawName).
			Cause(fmt.Errorf("%w: %v", ErrInvalidName, err)).Err()
	}

	if idx, found := r.findStation(name); found {
		return Result{}, NewError(op).Station().Slot(idx).Name(name).Cause(ErrDuplicateName).Err()
	}

	idx := slices.IndexFunc(r.stations, func(s *station) bool { return s == nil })
	if idx < 0 {
		return Result{}, NewError(op).Station().Name(name).Cause(ErrFull).Err()
	}

	r.stations[idx] = &station{name: name}

	return Result{
		Op:      op,
		Index:   idx,
		Name:    name,
		Message: fmt.Sprintf("Station %s created", rawName),
	}, nil
}

// FindStation returns the index of the first slot holding the normalized
// form of rawName.
func (r *Registry) FindStation(rawName string) (int, bool) {
	return r.findStation(Normalize(rawName))
}

func (r *Registry) findStation(name string) (int, bool) {
	idx := slices.IndexFunc(r.stations, func(s *station) bool {
		return s != nil && s.name == name
	})
	return idx, idx >= 0
}

// DeleteStation empties the station slot at index and removes every
// connection that references the station's name.
func (r *Registry) DeleteStation(index int) (Result, error) {
	const op = "DeleteStation"

	if index < 0 || index >= len(r.stations) {
		return Result{}, NewError(op).Station().Slot(index).Cause(ErrOutOfRange).Err()
	}

	res := Result{
		Op:      op,
		Index:   index,
		Message: fmt.Sprintf("Deleted station from entry position number : %d", index),
	}

	s := r.stations[index]
	if s == nil {
		return res, nil
	}
	r.stations[index] = nil
	res.Name = s.name

	for i, c := range r.connections {
		if c == nil {
			continue
		}
		if Normalize(c.from) == s.name || Normalize(c.to) == s.name {
			r.connections[i] = nil
			res.Removed = append(res.Removed, ConnectionSlot{
				Index:    i,
				From:     c.from,
				To:       c.to,
				Occupied: true,
			})
		}
	}

	return res, nil
}

// AddConnection links two known stations. The names are stored as given.
func (r *Registry) AddConnection(nameA, nameB string) (Result, error) {
	const op = "AddConnection"

	if _, found := r.FindStation(nameA); !found {
		return Result{}, NewError(op).Connection().Name(nameA).Cause(ErrUnknownStation).Err()
	}
	if _, found := r.FindStation(nameB); !found {
		return Result{}, NewError(op).Connection().Name(nameB).Cause(ErrUnknownStation).Err()
	}

	dup := slices.IndexFunc(r.connections, func(c *connection) bool {
		return c != nil && samePair(c.from, c.to, nameA, nameB)
	})
	if dup >= 0 {
		return Result{}, NewError(op).Connection().Slot(dup).Pair(nameA, nameB).
			Cause(ErrDuplicateConnection).Err()
	}

	idx := slices.IndexFunc(r.connections, func(c *connection) bool { return c == nil })
	if idx < 0 {
		return Result{}, NewError(op).Connection().Pair(nameA, nameB).Cause(ErrFull).Err()
	}

	r.connections[idx] = &connection{from: nameA, to: nameB}

	return Result{
		Op:      op,
		Index:   idx,
		From:    nameA,
		To:      nameB,
		Message: fmt.Sprintf("Connected %s with %s", nameA, nameB),
	}, nil
}

// DeleteConnection empties the connection slot at index.
func (r *Registry) DeleteConnection(index int) (Result, error) {
	const op = "DeleteConnection"

	if index < 0 || index >= len(r.connections) {
		return Result{}, NewError(op).Connection().Slot(index).Cause(ErrOutOfRange).Err()
	}

	res := Result{
		Op:      op,
		Index:   index,
		Message: fmt.Sprintf("Deleted connection from entry position number : %d", index),
	}
	if c := r.connections[index]; c != nil {
		res.From, res.To = c.from, c.to
	}
	r.connections[index] = nil

	return res, nil
}

// ListStations returns every station slot in index order.
func (r *Registry) ListStations() []StationSlot {
	out := make([]StationSlot, len(r.stations))
	for i, s := range r.stations {
		out[i] = StationSlot{Index: i}
		if s != nil {
			out[i].Name = s.name
			out[i].Occupied = true
		}
	}
	return out
}

// ListConnections returns every connection slot in index order.
func (r *Registry) ListConnections() []ConnectionSlot {
	out := make([]ConnectionSlot, len(r.connections))
	for i, c := range r.connections {
		out[i] = ConnectionSlot{Index: i}
		if c != nil {
			out[i].From = c.from
			out[i].To = c.to
			out[i].Occupied = true
		}
	}
	return out
}

// Stats returns occupancy counts.
func (r *Registry) Stats() Stats {
	st := Stats{
		StationCapacity:    len(r.stations),
		ConnectionCapacity: len(r.connections),
	}
	for _, s := range r.stations {
		if s != nil {
			st.Stations++
		}
	}
	for _, c := range r.connections {
		if c != nil {
			st.Connections++
		}
	}
	return st
}
