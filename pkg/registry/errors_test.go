package registry

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistryError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RegistryError
		expected string
	}{
		{
			name:     "slot and name",
			err:      NewError("AddStation").Station().Slot(2).Name("paris").Cause(ErrDuplicateName).Build(),
			expected: "AddStation station 2 (paris): station name already exists",
		},
		{
			name:     "slot only",
			err:      NewError("DeleteStation").Station().Slot(5).Cause(ErrOutOfRange).Build(),
			expected: "DeleteStation station 5: slot index out of range",
		},
		{
			name:     "pair without slot",
			err:      NewError("AddConnection").Connection().Pair("Paris", "Lyon").Cause(ErrFull).Build(),
			expected: `AddConnection connection "Paris - Lyon": no empty slot`,
		},
		{
			name:     "minimal",
			err:      NewError("AddStation").Station().Cause(ErrFull).Build(),
			expected: "AddStation station: no empty slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRegistryError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("%w: name is empty", ErrInvalidName)
	err := NewError("AddStation").Station().Cause(wrapped).Err()

	if !errors.Is(err, ErrInvalidName) {
		t.Error("errors.Is should see through the wrapped cause")
	}
	if errors.Is(err, ErrDuplicateName) {
		t.Error("errors.Is matched the wrong sentinel")
	}

	var rerr *RegistryError
	if !errors.As(err, &rerr) {
		t.Fatal("errors.As failed")
	}
	if rerr.Kind() != KindInvalidName {
		t.Errorf("Kind() = %v, want %v", rerr.Kind(), KindInvalidName)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{ErrDuplicateName, KindDuplicateName},
		{ErrDuplicateConnection, KindDuplicateConnection},
		{ErrFull, KindFull},
		{ErrUnknownStation, KindUnknownStation},
		{ErrOutOfRange, KindOutOfRange},
		{ErrInvalidName, KindInvalidName},
		{errors.New("something else"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	want := map[Kind]string{
		KindNone:                "none",
		KindDuplicateName:       "duplicate_name",
		KindDuplicateConnection: "duplicate_connection",
		KindFull:                "full",
		KindUnknownStation:      "unknown_station",
		KindOutOfRange:          "out_of_range",
		KindInvalidName:         "invalid_name",
		KindUnknown:             "unknown",
		Kind(99):                "unknown",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewError("AddStation").Station().Cause(ErrFull).Err(), "Station list is full"},
		{NewError("AddConnection").Connection().Cause(ErrFull).Err(), "Station connection list is full"},
		{NewError("AddStation").Station().Cause(ErrDuplicateName).Err(), "Name already exists"},
		{NewError("AddConnection").Connection().Cause(ErrDuplicateConnection).Err(), "Connection already exists"},
		{NewError("AddConnection").Connection().Cause(ErrUnknownStation).Err(), "Invalid station selected."},
		{NewError("DeleteStation").Station().Slot(9).Cause(ErrOutOfRange).Err(), "Given number is out of bounds."},
		{errors.New("boom"), "Unexpected error: boom"},
	}
	for _, tt := range tests {
		if got := Describe(tt.err); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}

	if got := EntityOf(fmt.Errorf("wrapped: %w", NewError("x").Connection().Err())); got != EntityConnection {
		t.Errorf("EntityOf = %q, want %q", got, EntityConnection)
	}
}
