// Package service wraps the station registry with structured logging,
// Prometheus metrics and the activity log. Front ends talk to a Service,
// never to the registry directly.
package service

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/dd0wney/cluso-stations/pkg/audit"
	"github.com/dd0wney/cluso-stations/pkg/logging"
	"github.com/dd0wney/cluso-stations/pkg/metrics"
	"github.com/dd0wney/cluso-stations/pkg/registry"
)

// Service is the instrumented facade over a Registry.
type Service struct {
	reg     *registry.Registry
	log     logging.Logger
	metrics *metrics.Registry
	audit   *audit.Log
	session string
}

// Options carries the ambient collaborators. Nil fields get no-op or
// private defaults.
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
	Audit   *audit.Log
}

// New wraps reg.
func New(reg *registry.Registry, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewRegistry()
	}
	if opts.Audit == nil {
		opts.Audit = audit.NewLog(256)
	}

	session := uuid.New().String()
	s := &Service{
		reg:     reg,
		log:     opts.Logger.With(logging.Component("registry"), logging.Session(session)),
		metrics: opts.Metrics,
		audit:   opts.Audit,
		session: session,
	}
	s.updateOccupancy()
	return s
}

// Session returns the ID stamped on this service's logs and audit events.
func (s *Service) Session() string {
	return s.session
}

// Metrics returns the metrics registry.
func (s *Service) Metrics() *metrics.Registry {
	return s.metrics
}

// Audit returns the activity log.
func (s *Service) Audit() *audit.Log {
	return s.audit
}

// AddStation adds a station.
func (s *Service) AddStation(rawName string) (registry.Result, error) {
	span := logging.Begin(s.log, "AddStation", logging.Station(rawName))
	res, err := s.reg.AddStation(rawName)
	s.finish(span, "AddStation", err)

	if err != nil {
		s.record(audit.NewFailedEvent(audit.ActionCreate, audit.ResourceStation, slotOf(err), rawName, registry.KindOf(err).String(), err))
		return res, err
	}
	s.record(audit.NewEvent(audit.ActionCreate, audit.ResourceStation, res.Index, res.Name))
	return res, nil
}

// FindStation looks a station up by name. Lookups are logged at debug level
// only; they do not change state and are not audited.
func (s *Service) FindStation(rawName string) (int, bool) {
	idx, found := s.reg.FindStation(rawName)
	s.log.Debug("FindStation", logging.Station(rawName), logging.Slot(idx), logging.Bool("found", found))
	return idx, found
}

// DeleteStation deletes the station at index and its connections.
func (s *Service) DeleteStation(index int) (registry.Result, error) {
	span := logging.Begin(s.log, "DeleteStation", logging.Slot(index))
	res, err := s.reg.DeleteStation(index)
	s.finish(span, "DeleteStation", err, logging.Removed(len(res.Removed)))

	if err != nil {
		s.record(audit.NewFailedEvent(audit.ActionDelete, audit.ResourceStation, index, "", registry.KindOf(err).String(), err))
		return res, err
	}

	s.record(audit.NewEvent(audit.ActionDelete, audit.ResourceStation, index, res.Name))
	for _, c := range res.Removed {
		s.log.Info("connection removed by cascade", logging.Slot(c.Index), logging.Pair(c.From, c.To), logging.Station(res.Name))
		s.record(audit.NewEvent(audit.ActionCascade, audit.ResourceConnection, c.Index, c.String()))
	}
	s.metrics.RecordCascade(len(res.Removed))
	return res, nil
}

// AddConnection links two stations.
func (s *Service) AddConnection(nameA, nameB string) (registry.Result, error) {
	span := logging.Begin(s.log, "AddConnection", logging.Pair(nameA, nameB))
	res, err := s.reg.AddConnection(nameA, nameB)
	s.finish(span, "AddConnection", err)

	subject := nameA + " - " + nameB
	if err != nil {
		s.record(audit.NewFailedEvent(audit.ActionCreate, audit.ResourceConnection, slotOf(err), subject, registry.KindOf(err).String(), err))
		return res, err
	}
	s.record(audit.NewEvent(audit.ActionCreate, audit.ResourceConnection, res.Index, subject))
	return res, nil
}

// DeleteConnection deletes the connection at index.
func (s *Service) DeleteConnection(index int) (registry.Result, error) {
	span := logging.Begin(s.log, "DeleteConnection", logging.Slot(index))
	res, err := s.reg.DeleteConnection(index)
	s.finish(span, "DeleteConnection", err)

	if err != nil {
		s.record(audit.NewFailedEvent(audit.ActionDelete, audit.ResourceConnection, index, "", registry.KindOf(err).String(), err))
		return res, err
	}

	subject := ""
	if res.From != "" || res.To != "" {
		subject = res.From + " - " + res.To
	}
	s.record(audit.NewEvent(audit.ActionDelete, audit.ResourceConnection, index, subject))
	return res, nil
}

// ListStations returns every station slot.
func (s *Service) ListStations() []registry.StationSlot {
	return s.reg.ListStations()
}

// ListConnections returns every connection slot.
func (s *Service) ListConnections() []registry.ConnectionSlot {
	return s.reg.ListConnections()
}

// Stats returns registry occupancy.
func (s *Service) Stats() registry.Stats {
	return s.reg.Stats()
}

// Samples returns the current metric values.
func (s *Service) Samples() ([]metrics.Sample, error) {
	return s.metrics.Snapshot()
}

// RecentActivity returns up to n audit events, newest first.
func (s *Service) RecentActivity(n int) []*audit.Event {
	return s.audit.GetRecentEvents(n)
}

// FailedActivity returns up to n rejected operations, newest first.
func (s *Service) FailedActivity(n int) []*audit.Event {
	failed := s.audit.GetEvents(&audit.Filter{Status: audit.StatusFailure})
	if len(failed) > n {
		failed = failed[len(failed)-n:]
	}
	slices.Reverse(failed)
	return failed
}

func (s *Service) finish(span *logging.Span, op string, err error, fields ...logging.Field) {
	status := metrics.StatusSuccess
	if err != nil {
		status = registry.KindOf(err).String()
		fields = append(fields, logging.Kind(status))
	}
	elapsed := span.End(err, fields...)
	s.metrics.RecordOperation(op, status, elapsed)
	s.updateOccupancy()
}

func (s *Service) record(e *audit.Event) {
	e.SessionID = s.session
	s.audit.Record(e)
}

func (s *Service) updateOccupancy() {
	st := s.reg.Stats()
	s.metrics.UpdateOccupancy(st.Stations, st.StationCapacity, st.Connections, st.ConnectionCapacity)
}

// slotOf extracts the slot index carried by a registry error, or -1.
func slotOf(err error) int {
	var rerr *registry.RegistryError
	if errors.As(err, &rerr) {
		return rerr.Index
	}
	return -1
}
