package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min       int
		max       int
		expectErr bool
	}{
		{"below range", 0, 1, 64, true},
		{"at minimum", 1, 1, 64, false},
		{"in range", 5, 1, 64, false},
		{"at maximum", 64, 1, 64, false},
		{"above range", 65, 1, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigValidator("TestConfig").RangeInt("Capacity", tt.value, tt.min, tt.max).Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("RangeInt(%d, %d, %d) = %v, want error %v", tt.value, tt.min, tt.max, err, tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	for _, v := range []int{-1, 0} {
		if NewConfigValidator("TestConfig").Positive("Capacity", v).Validate() == nil {
			t.Errorf("Positive(%d) should fail", v)
		}
	}
	if err := NewConfigValidator("TestConfig").Positive("Capacity", 1).Validate(); err != nil {
		t.Errorf("Positive(1) = %v", err)
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"console", "tui"}

	if err := NewConfigValidator("ShellConfig").OneOf("Mode", "tui", allowed).Validate(); err != nil {
		t.Errorf("Expected tui to be accepted, got %v", err)
	}

	err := NewConfigValidator("ShellConfig").OneOf("Mode", "gui", allowed).Validate()
	if err == nil {
		t.Fatal("Expected gui to be rejected")
	}
	if !strings.Contains(err.Error(), `ShellConfig.Mode: value "gui"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.RangeInt("Skipped", -1, 0, 200)
	})
	if err := cv.Validate(); err != nil {
		t.Errorf("When(false) should not run validations, got %v", err)
	}

	cv.When(true, func(v *ConfigValidator) {
		v.RangeInt("Checked", -1, 0, 200)
	})
	err := cv.Validate()
	if err == nil || !strings.Contains(err.Error(), "TestConfig.Checked") {
		t.Errorf("When(true) should run validations, got %v", err)
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	if err := NewConfigValidator("TestConfig").Validate(); err != nil {
		t.Errorf("Validate() with no errors = %v", err)
	}

	single := NewConfigValidator("TestConfig").RangeInt("A", 0, 1, 5)
	if err := single.Validate(); err == nil || !strings.HasPrefix(err.Error(), "TestConfig.A") {
		t.Errorf("Validate() single = %v", err)
	}

	err := NewConfigValidator("TestConfig").
		RangeInt("A", 0, 1, 5).
		OneOf("B", "x", []string{"y"}).
		Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Validate() = %v, want error count", err)
	}

	joined, ok := errors.Unwrap(err).(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() should wrap a joined error, got %T", errors.Unwrap(err))
	}
	wrapped := joined.Unwrap()
	if len(wrapped) != 2 {
		t.Fatalf("joined %d errors, want 2", len(wrapped))
	}
	for i, field := range []string{"TestConfig.A", "TestConfig.B"} {
		if !strings.HasPrefix(wrapped[i].Error(), field) {
			t.Errorf("error %d = %v, want prefix %s", i, wrapped[i], field)
		}
	}
}
