package apperr

import (
	"errors"
	"testing"
)

func TestWrappersPreserveKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "not found", err: NotFoundf("task %d", 4), kind: ErrNotFound},
		{name: "invalid input", err: Invalidf("duration %q", "abc"), kind: ErrInvalidInput},
		{name: "capacity", err: Capacityf("all %d slots full", 3), kind: ErrCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
		})
	}
}

func TestKindsAreDistinct(t *testing.T) {
	if errors.Is(Capacityf("full"), ErrNotFound) {
		t.Error("capacity error must not match ErrNotFound")
	}
	if errors.Is(NotFoundf("missing"), ErrCapacity) {
		t.Error("not-found error must not match ErrCapacity")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("something went wrong"), expected: "Error: something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "state")
	if got != "Error: failed to load state" {
		t.Errorf("Formatf = %q", got)
	}
}
