package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, stations ...string) *Registry {
	t.Helper()

	r := NewDefault()
	for _, name := range stations {
		_, err := r.AddStation(name)
		require.NoError(t, err, "AddStation(%q)", name)
	}
	return r
}

func emptyConnections(n int) []ConnectionSlot {
	out := make([]ConnectionSlot, n)
	for i := range out {
		out[i] = ConnectionSlot{Index: i}
	}
	return out
}

func TestNew(t *testing.T) {
	r, err := New(Config{StationCapacity: 3, ConnectionCapacity: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, r.StationCapacity())
	assert.Equal(t, 2, r.ConnectionCapacity())

	_, err = New(Config{StationCapacity: 0, ConnectionCapacity: 2})
	assert.Error(t, err)
	_, err = New(Config{StationCapacity: 1, ConnectionCapacity: -1})
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"New York":   "newyork",
		"NEW YORK":   "newyork",
		"newyork":    "newyork",
		" Paris ":    "paris",
		"   ":        "",
		"Saint-Malo": "saint-malo",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAddStation(t *testing.T) {
	r := NewDefault()

	res, err := r.AddStation("New York")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, "newyork", res.Name)
	assert.Equal(t, "Station New York created", res.Message)

	res, err = r.AddStation("Paris")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)

	slots := r.ListStations()
	assert.Equal(t, StationSlot{Index: 0, Name: "newyork", Occupied: true}, slots[0])
	assert.Equal(t, StationSlot{Index: 1, Name: "paris", Occupied: true}, slots[1])
	assert.False(t, slots[2].Occupied)
}

func TestAddStation_DuplicateName(t *testing.T) {
	for _, variant := range []string{"New York", "newyork", "NEW YORK", " new  york "} {
		t.Run(variant, func(t *testing.T) {
			r := newTestRegistry(t, "New York")
			before := r.ListStations()

			_, err := r.AddStation(variant)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDuplicateName))
			assert.Equal(t, KindDuplicateName, KindOf(err))

			var rerr *RegistryError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, 0, rerr.Index)
			assert.Equal(t, EntityStation, rerr.Entity)

			if diff := cmp.Diff(before, r.ListStations()); diff != "" {
				t.Errorf("stations changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestAddStation_Full(t *testing.T) {
	r := newTestRegistry(t, "a", "b", "c", "d", "e")
	before := r.ListStations()

	_, err := r.AddStation("f")
	require.Error(t, err)
	assert.True(t, IsFull(err))
	assert.Equal(t, KindFull, KindOf(err))

	if diff := cmp.Diff(before, r.ListStations()); diff != "" {
		t.Errorf("stations changed (-before +after):\n%s", diff)
	}
}

func TestAddStation_InvalidName(t *testing.T) {
	r := NewDefault()

	for _, name := range []string{"", "    ", strings.Repeat("x", 65)} {
		_, err := r.AddStation(name)
		require.Error(t, err, "AddStation(%q)", name)
		assert.Equal(t, KindInvalidName, KindOf(err))
	}
	assert.Equal(t, 0, r.Stats().Stations)
}

func TestAddStation_ReusesLowestEmptySlot(t *testing.T) {
	r := newTestRegistry(t, "a", "b", "c")

	_, err := r.DeleteStation(1)
	require.NoError(t, err)
	_, err = r.DeleteStation(0)
	require.NoError(t, err)

	res, err := r.AddStation("d")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)

	res, err = r.AddStation("e")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)

	// c never moved
	idx, found := r.FindStation("c")
	assert.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestFindStation(t *testing.T) {
	r := NewDefault()

	_, found := r.FindStation("paris")
	assert.False(t, found)

	res, err := r.AddStation("Le Mans")
	require.NoError(t, err)

	for _, q := range []string{"Le Mans", "lemans", "LE MANS"} {
		idx, found := r.FindStation(q)
		assert.True(t, found, q)
		assert.Equal(t, res.Index, idx, q)
	}

	// empty slots never match the empty name
	_, found = r.FindStation("")
	assert.False(t, found)
}

func TestDeleteStation_Cascade(t *testing.T) {
	r := newTestRegistry(t, "Paris", "Lyon", "Nice")

	_, err := r.AddConnection("Paris", "Lyon")
	require.NoError(t, err)
	_, err = r.AddConnection("Lyon", "Nice")
	require.NoError(t, err)
	_, err = r.AddConnection("Nice", "PARIS")
	require.NoError(t, err)

	res, err := r.DeleteStation(0)
	require.NoError(t, err)
	assert.Equal(t, "paris", res.Name)
	assert.Equal(t, "Deleted station from entry position number : 0", res.Message)
	assert.Equal(t, []ConnectionSlot{
		{Index: 0, From: "Paris", To: "Lyon", Occupied: true},
		{Index: 2, From: "Nice", To: "PARIS", Occupied: true},
	}, res.Removed)

	assert.False(t, r.ListStations()[0].Occupied)

	want := emptyConnections(6)
	want[1] = ConnectionSlot{Index: 1, From: "Lyon", To: "Nice", Occupied: true}
	if diff := cmp.Diff(want, r.ListConnections()); diff != "" {
		t.Errorf("connections mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteStation_EmptySlot(t *testing.T) {
	r := newTestRegistry(t, "a", "b")
	_, err := r.AddConnection("a", "b")
	require.NoError(t, err)

	res, err := r.DeleteStation(4)
	require.NoError(t, err)
	assert.Empty(t, res.Name)
	assert.Empty(t, res.Removed)
	assert.Equal(t, 1, r.Stats().Connections)
}

func TestDeleteStation_OutOfRange(t *testing.T) {
	r := newTestRegistry(t, "a")

	for _, idx := range []int{-1, 5, 6, 100} {
		_, err := r.DeleteStation(idx)
		require.Error(t, err, "DeleteStation(%d)", idx)
		assert.True(t, errors.Is(err, ErrOutOfRange))
	}
	assert.Equal(t, 1, r.Stats().Stations)
}

func TestAddConnection_UnknownStation(t *testing.T) {
	r := newTestRegistry(t, "Paris")

	tests := [][2]string{
		{"Berlin", "Rome"},
		{"Paris", "Rome"},
		{"Rome", "Paris"},
		{"", "Paris"},
	}
	for _, pair := range tests {
		_, err := r.AddConnection(pair[0], pair[1])
		require.Error(t, err, "%v", pair)
		assert.Equal(t, KindUnknownStation, KindOf(err))
	}

	if diff := cmp.Diff(emptyConnections(6), r.ListConnections()); diff != "" {
		t.Errorf("connections changed:\n%s", diff)
	}
}

func TestAddConnection_Duplicate(t *testing.T) {
	r := newTestRegistry(t, "A", "B")

	res, err := r.AddConnection("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, "Connected A with B", res.Message)

	for _, pair := range [][2]string{{"B", "A"}, {"A", "B"}, {"a", "b"}, {" b", "A "}} {
		_, err := r.AddConnection(pair[0], pair[1])
		require.Error(t, err, "%v", pair)
		assert.True(t, errors.Is(err, ErrDuplicateConnection))
		assert.True(t, IsDuplicate(err))
	}
	assert.Equal(t, 1, r.Stats().Connections)
}

func TestAddConnection_StoresNamesAsGiven(t *testing.T) {
	r := newTestRegistry(t, "Paris", "Lyon")

	_, err := r.AddConnection("PARIS", "ly on")
	require.NoError(t, err)

	c := r.ListConnections()[0]
	assert.Equal(t, "PARIS", c.From)
	assert.Equal(t, "ly on", c.To)
	assert.Equal(t, "PARIS - ly on", c.String())
}

func TestConnectionRoundTrip(t *testing.T) {
	r := newTestRegistry(t, "Paris", "Lyon")

	res, err := r.AddConnection("Paris", "Lyon")
	require.NoError(t, err)
	require.Equal(t, 0, res.Index)

	del, err := r.DeleteConnection(0)
	require.NoError(t, err)
	assert.Equal(t, "Paris", del.From)
	assert.Equal(t, "Lyon", del.To)

	if diff := cmp.Diff(emptyConnections(6), r.ListConnections()); diff != "" {
		t.Errorf("connections not empty:\n%s", diff)
	}
}

func TestAddConnection_Full(t *testing.T) {
	r := newTestRegistry(t, "A", "B", "C", "D", "E")

	pairs := [][2]string{
		{"A", "B"}, {"A", "C"}, {"A", "D"},
		{"B", "C"}, {"B", "D"}, {"C", "D"},
	}
	for _, p := range pairs {
		_, err := r.AddConnection(p[0], p[1])
		require.NoError(t, err, "%v", p)
	}
	before := r.ListConnections()

	_, err := r.AddConnection("D", "E")
	require.Error(t, err)
	assert.Equal(t, KindFull, KindOf(err))

	if diff := cmp.Diff(before, r.ListConnections()); diff != "" {
		t.Errorf("connections changed (-before +after):\n%s", diff)
	}
}

func TestDeleteConnection(t *testing.T) {
	r := newTestRegistry(t, "a", "b", "c")
	_, err := r.AddConnection("a", "b")
	require.NoError(t, err)
	_, err = r.AddConnection("b", "c")
	require.NoError(t, err)

	_, err = r.DeleteConnection(0)
	require.NoError(t, err)

	conns := r.ListConnections()
	assert.False(t, conns[0].Occupied)
	assert.Empty(t, conns[0].From)
	assert.True(t, conns[1].Occupied)

	// empty slot
	res, err := r.DeleteConnection(3)
	require.NoError(t, err)
	assert.Empty(t, res.From)

	for _, idx := range []int{-1, 6} {
		_, err := r.DeleteConnection(idx)
		assert.Equal(t, KindOutOfRange, KindOf(err), "DeleteConnection(%d)", idx)
	}
}

func TestListReturnsCopies(t *testing.T) {
	r := newTestRegistry(t, "a", "b")
	_, err := r.AddConnection("a", "b")
	require.NoError(t, err)

	stations := r.ListStations()
	stations[0].Name = "changed"
	conns := r.ListConnections()
	conns[0].From = "changed"

	assert.Equal(t, "a", r.ListStations()[0].Name)
	assert.Equal(t, "a", r.ListConnections()[0].From)
}

func TestStats(t *testing.T) {
	r := newTestRegistry(t, "a", "b")
	_, err := r.AddConnection("a", "b")
	require.NoError(t, err)

	assert.Equal(t, Stats{
		Stations:           2,
		StationCapacity:    5,
		Connections:        1,
		ConnectionCapacity: 6,
	}, r.Stats())
}
