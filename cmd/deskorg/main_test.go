package main

import (
	"errors"
	"fmt"
	"testing"

	"deskorg/internal/faults"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"configuration", faults.Wrap(faults.ErrConfiguration, "organizing", "resolve root", "no desktop", nil), 2},
		{"wrapped configuration", fmt.Errorf("organize: %w", faults.ErrConfiguration), 2},
		{"file system", faults.Wrap(faults.ErrFileSystem, "moving", "rename", "a.txt", nil), 1},
		{"plain", errors.New("unknown flag"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
