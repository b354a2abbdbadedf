package validation

import (
	"testing"

	"github.com/vnykmshr/gofunnel/pkg/common/errors"
)

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     int
		wantError bool
	}{
		{"positive value", "test", "capacity", 10, false},
		{"zero value", "test", "capacity", 0, false},
		{"negative value", "test", "capacity", -1, true},
		{"large positive", "test", "capacity", 1000000, false},
		{"large negative", "test", "capacity", -1000000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     string
		wantError bool
	}{
		{"non-empty string", "test", "name", "value", false},
		{"single char", "test", "name", "a", false},
		{"whitespace", "test", "name", " ", false}, // Whitespace is not empty
		{"empty string", "test", "name", "", true},
		{"long string", "test", "name", "this is a long value", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	t.Run("ValidateNonNegative error details", func(t *testing.T) {
		err := ValidateNonNegative("mpsc", "initialCapacity", -5)
		if err == nil {
			t.Fatal("expected error")
		}

		var valErr *errors.ValidationError
		if e, ok := err.(*errors.ValidationError); ok {
			valErr = e
		} else {
			t.Fatal("could not cast to ValidationError")
		}

		if valErr.Module != "mpsc" {
			t.Errorf("Module = %q, want %q", valErr.Module, "mpsc")
		}
		if valErr.Field != "initialCapacity" {
			t.Errorf("Field = %q, want %q", valErr.Field, "initialCapacity")
		}
		if valErr.Value != -5 {
			t.Errorf("Value = %v, want %v", valErr.Value, -5)
		}
		if valErr.Reason != "cannot be negative" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "cannot be negative")
		}
		if valErr.Hint != "use 0 for the default" {
			t.Errorf("Hint = %q, want %q", valErr.Hint, "use 0 for the default")
		}
	})

	t.Run("ValidateNotEmpty error details", func(t *testing.T) {
		err := ValidateNotEmpty("metrics", "name", "")
		if err == nil {
			t.Fatal("expected error")
		}

		var valErr *errors.ValidationError
		if e, ok := err.(*errors.ValidationError); ok {
			valErr = e
		} else {
			t.Fatal("could not cast to ValidationError")
		}

		if valErr.Reason != "cannot be empty" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "cannot be empty")
		}
		if valErr.Hint != "provide a non-empty name" {
			t.Errorf("Hint = %q, want contains 'name'", valErr.Hint)
		}
	})
}

func TestValidationErrorWrapping(t *testing.T) {
	// All validation errors should wrap ErrInvalidConfiguration
	t.Run("errors wrap ErrInvalidConfiguration", func(t *testing.T) {
		testCases := []struct {
			name string
			err  error
		}{
			{"ValidateNonNegative", ValidateNonNegative("test", "field", -1)},
			{"ValidateNotEmpty", ValidateNotEmpty("test", "field", "")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				if tc.err == nil {
					t.Fatal("expected error")
				}
				if !errors.IsValidationError(tc.err) {
					t.Error("error should be a ValidationError")
				}
				if e, ok := tc.err.(*errors.ValidationError); ok {
					if wrapped := e.Unwrap(); wrapped != errors.ErrInvalidConfiguration {
						t.Errorf("should unwrap to ErrInvalidConfiguration, got %v", wrapped)
					}
				}
			})
		}
	})
}
