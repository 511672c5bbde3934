package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "save", Target: "/tmp/notes.txt"},
			expected: "save /tmp/notes.txt",
		},
		{
			name:     "op, target, and context",
			err:      &OperationError{Op: "save", Target: "/tmp/notes.txt", Context: "prompted"},
			expected: "save /tmp/notes.txt (prompted)",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "load", Target: "a.json", Context: "startup", Err: errors.New("io error")},
			expected: "load a.json (startup): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("save", "/tmp/notes.txt", nil)
	err = err.WithContext("disk full")

	if err.Context != "disk full" {
		t.Errorf("expected context 'disk full', got '%s'", err.Context)
	}
}

func TestOperationError_WithContext_Nil(t *testing.T) {
	var err *OperationError
	if err.WithContext("context") != nil {
		t.Error("expected nil result for nil receiver")
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	var nilErr *OperationError
	if nilErr.Unwrap() != nil {
		t.Error("expected nil from Unwrap() on nil receiver")
	}

	err := NewOperationError("save", "notes.txt", fs.ErrPermission)
	if err.Unwrap() != fs.ErrPermission {
		t.Error("Unwrap() did not return inner error")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected errors.Is to match wrapped sentinel")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match same instance")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to not match different error")
	}
	if nilErr.Is(fs.ErrPermission) {
		t.Error("expected Is() to return false for nil receiver")
	}
}

func TestInitError(t *testing.T) {
	inner := errors.New("no tty")
	err := &InitError{Component: "backend", Err: inner}

	if got := err.Error(); got != "init backend: no tty" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the cause")
	}
}
