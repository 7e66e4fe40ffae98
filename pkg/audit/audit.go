// Package audit keeps an in-memory activity log of registry operations.
package audit

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action types for audit events
type Action string

const (
	ActionCreate  Action = "create"
	ActionDelete  Action = "delete"
	ActionCascade Action = "cascade"
)

// ResourceType represents the collection an event touched
type ResourceType string

const (
	ResourceStation    ResourceType = "station"
	ResourceConnection ResourceType = "connection"
)

// Status represents the outcome of an action
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Event represents a single audit log entry
type Event struct {
	ID           string       `json:"id"`
	Timestamp    time.Time    `json:"timestamp"`
	SessionID    string       `json:"session_id,omitempty"`
	Action       Action       `json:"action"`
	ResourceType ResourceType `json:"resource_type"`
	Slot         int          `json:"slot"` // -1 when the operation never reached a slot
	Subject      string       `json:"subject,omitempty"`
	Status       Status       `json:"status"`
	Kind         string       `json:"kind,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// Filter represents filtering criteria for audit events
type Filter struct {
	Action       Action
	ResourceType ResourceType
	Status       Status
	StartTime    *time.Time
	EndTime      *time.Time
}

// Log manages audit events with a circular buffer
type Log struct {
	events     []*Event
	bufferSize int
	index      int
	count      int
	total      int64
	mu         sync.RWMutex
}

// NewLog creates a new audit log with the given buffer size
func NewLog(bufferSize int) *Log {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Log{
		events:     make([]*Event, bufferSize),
		bufferSize: bufferSize,
	}
}

// Record stores an event, filling in its ID and timestamp when unset
func (l *Log) Record(event *Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	l.events[l.index] = event
	l.index = (l.index + 1) % l.bufferSize
	if l.count < l.bufferSize {
		l.count++
	}
	l.total++
}

// GetEvents retrieves stored events, oldest first, with optional filtering
func (l *Log) GetEvents(filter *Filter) []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*Event, 0, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.index - l.count + i + l.bufferSize) % l.bufferSize
		event := l.events[idx]
		if event == nil || !filter.matches(event) {
			continue
		}
		result = append(result, event)
	}
	return result
}

func (f *Filter) matches(e *Event) bool {
	if f == nil {
		return true
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.ResourceType != "" && e.ResourceType != f.ResourceType {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.StartTime != nil && e.Timestamp.Before(*f.StartTime) {
		return false
	}
	if f.EndTime != nil && e.Timestamp.After(*f.EndTime) {
		return false
	}
	return true
}

// GetRecentEvents returns the N most recent events, newest first
func (l *Log) GetRecentEvents(n int) []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > l.count {
		n = l.count
	}

	result := make([]*Event, 0, n)
	for i := 0; i < n; i++ {
		idx := (l.index - 1 - i + l.bufferSize) % l.bufferSize
		if l.events[idx] != nil {
			result = append(result, l.events[idx])
		}
	}
	return result
}

// GetEventCount returns the number of events currently stored
func (l *Log) GetEventCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// GetTotalRecorded returns the number of events ever recorded, including
// ones the buffer has overwritten
func (l *Log) GetTotalRecorded() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total
}

// NewEvent creates a successful event
func NewEvent(action Action, resource ResourceType, slot int, subject string) *Event {
	return &Event{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		Action:       action,
		ResourceType: resource,
		Slot:         slot,
		Subject:      subject,
		Status:       StatusSuccess,
	}
}

// NewFailedEvent creates a failed event carrying the failure kind
func NewFailedEvent(action Action, resource ResourceType, slot int, subject, kind string, err error) *Event {
	e := NewEvent(action, resource, slot, subject)
	e.Status = StatusFailure
	e.Kind = kind
	if err != nil {
		e.ErrorMessage = err.Error()
	}
	return e
}

// String returns a human-readable representation of an event
func (e *Event) String() string {
	slot := "-"
	if e.Slot >= 0 {
		slot = fmt.Sprintf("%d", e.Slot)
	}
	s := fmt.Sprintf("[%s] %s %s slot=%s %s (%s)",
		e.Timestamp.Format(time.TimeOnly),
		e.Action,
		e.ResourceType,
		slot,
		e.Subject,
		e.Status,
	)
	if e.Kind != "" {
		s += ": " + e.Kind
	}
	return s
}
