package graph

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorBuilder(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewError("Leiden").Kind(AlgorithmFailure).Context("iteration %d", 3).Cause(cause).Build()

	if err.Op != "Leiden" || err.Kind != AlgorithmFailure {
		t.Errorf("Build() = %+v", err)
	}

	msg := err.Error()
	for _, part := range []string{"Leiden", "algorithm failure", "iteration 3", "disk on fire"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"invalid parameter sentinel", InvalidParameterError("New", "bad"), ErrInvalidParameter, true},
		{"algorithm sentinel", AlgorithmError("Multilevel", cause), ErrAlgorithmFailure, true},
		{"allocation sentinel", AllocationError("Community", "membership", 10), ErrAllocationFailure, true},
		{"cause", AlgorithmError("Multilevel", cause), cause, true},
		{"wrong sentinel", InvalidParameterError("New", "bad"), ErrAlgorithmFailure, false},
		{"wrapped", fmt.Errorf("run 2: %w", InvalidParameterError("New", "bad")), ErrInvalidParameter, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlgorithmError_KeepsKind(t *testing.T) {
	inner := InvalidParameterError("Leiden", "beta must be positive")
	err := AlgorithmError("2 Leiden", inner)

	if KindOf(err) != InvalidParameter {
		t.Errorf("KindOf() = %v, want invalid parameter", KindOf(err))
	}
	if IsAlgorithmFailure(err) {
		t.Error("a classified error should not be reclassified")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("plain")) != 0 {
		t.Error("KindOf(plain) should be 0")
	}
	if got := Kind(0).String(); got != "unknown" {
		t.Errorf("Kind(0).String() = %q, want unknown", got)
	}
	if got := AllocationFailure.String(); got != "allocation failure" {
		t.Errorf("AllocationFailure.String() = %q", got)
	}
}
