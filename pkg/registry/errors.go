package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind.
var (
	ErrDuplicateName       = errors.New("station name already exists")
	ErrDuplicateConnection = errors.New("connection already exists")
	ErrFull                = errors.New("no empty slot")
	ErrUnknownStation      = errors.New("unknown station")
	ErrOutOfRange          = errors.New("slot index out of range")
	ErrInvalidName         = errors.New("invalid station name")
)

// Kind classifies a registry failure for callers that render results.
type Kind int

const (
	KindNone Kind = iota
	KindDuplicateName
	KindDuplicateConnection
	KindFull
	KindUnknownStation
	KindOutOfRange
	KindInvalidName
	KindUnknown
)

// String returns the snake_case name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDuplicateName:
		return "duplicate_name"
	case KindDuplicateConnection:
		return "duplicate_connection"
	case KindFull:
		return "full"
	case KindUnknownStation:
		return "unknown_station"
	case KindOutOfRange:
		return "out_of_range"
	case KindInvalidName:
		return "invalid_name"
	default:
		return "unknown"
	}
}

// KindOf maps err to its Kind. A nil error is KindNone.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDuplicateName):
		return KindDuplicateName
	case errors.Is(err, ErrDuplicateConnection):
		return KindDuplicateConnection
	case errors.Is(err, ErrFull):
		return KindFull
	case errors.Is(err, ErrUnknownStation):
		return KindUnknownStation
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	default:
		return KindUnknown
	}
}

// Entity names used in RegistryError.
const (
	EntityStation    = "station"
	EntityConnection = "connection"
)

// RegistryError provides structured error information for registry operations.
type RegistryError struct {
	Op     string // Operation that failed (e.g., "AddStation")
	Entity string // "station" or "connection"
	Index  int    // Slot index, -1 when not applicable
	Name   string // Name or pair involved, as supplied by the caller
	Cause  error  // One of the sentinel errors, possibly wrapped
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Index >= 0 {
		if e.Name != "" {
			return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.Index, e.Name, e.Cause)
		}
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.Index, e.Cause)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *RegistryError) Unwrap() error {
	return e.Cause
}

// Kind returns the failure kind of the cause.
func (e *RegistryError) Kind() Kind {
	return KindOf(e.Cause)
}

// ErrorBuilder provides a fluent interface for building RegistryErrors.
type ErrorBuilder struct {
	err RegistryError
}

// NewError creates a new error builder for the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: RegistryError{Op: op, Index: -1}}
}

// Station sets the entity to "station".
func (b *ErrorBuilder) Station() *ErrorBuilder {
	b.err.Entity = EntityStation
	return b
}

// Connection sets the entity to "connection".
func (b *ErrorBuilder) Connection() *ErrorBuilder {
	b.err.Entity = EntityConnection
	return b
}

// Slot sets the slot index.
func (b *ErrorBuilder) Slot(index int) *ErrorBuilder {
	b.err.Index = index
	return b
}

// Name sets the name involved in the failure.
func (b *ErrorBuilder) Name(name string) *ErrorBuilder {
	b.err.Name = name
	return b
}

// Pair sets the name to a "from-to" pair.
func (b *ErrorBuilder) Pair(from, to string) *ErrorBuilder {
	b.err.Name = from + " - " + to
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed RegistryError.
func (b *ErrorBuilder) Build() *RegistryError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// IsFull reports whether err means a collection had no empty slot.
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsDuplicate reports whether err is a duplicate station or connection.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateName) || errors.Is(err, ErrDuplicateConnection)
}

// EntityOf returns the entity a RegistryError refers to, or "".
func EntityOf(err error) string {
	var rerr *RegistryError
	if errors.As(err, &rerr) {
		return rerr.Entity
	}
	return ""
}

// Describe returns the line shown to an operator for a registry failure.
func Describe(err error) string {
	switch KindOf(err) {
	case KindDuplicateName:
		return "Name already exists"
	case KindDuplicateConnection:
		return "Connection already exists"
	case KindFull:
		if EntityOf(err) == EntityConnection {
			return "Station connection list is full"
		}
		return "Station list is full"
	case KindUnknownStation:
		return "Invalid station selected."
	case KindOutOfRange:
		return "Given number is out of bounds."
	case KindInvalidName:
		return "Station name must be 1 to 64 characters, spaces excluded."
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
