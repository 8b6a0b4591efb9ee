package faults_test

import (
	"errors"
	"strings"
	"testing"

	"deskorg/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrFileSystem, "organizer", "move", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrFileSystem) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organizer", "move", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutMarkerDefaultsToFileSystem(t *testing.T) {
	err := faults.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, faults.ErrFileSystem) {
		t.Fatalf("expected filesystem marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "organizer failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestSeverityMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want faults.Severity
	}{
		{"nil", nil, faults.SeverityRecovered},
		{"configuration", faults.Wrap(faults.ErrConfiguration, "preflight", "stat root", "missing", nil), faults.SeverityFatal},
		{"extraction", faults.Wrap(faults.ErrExtraction, "extract", "pdf", "corrupt", nil), faults.SeverityRecovered},
		{"filesystem", faults.Wrap(faults.ErrFileSystem, "organizer", "rename", "denied", nil), faults.SeverityFile},
		{"plain", errors.New("io"), faults.SeverityFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faults.SeverityOf(tt.err); got != tt.want {
				t.Fatalf("SeverityOf = %q, want %q", got, tt.want)
			}
		})
	}
	if !faults.IsFatal(faults.Wrap(faults.ErrConfiguration, "", "", "bad root", nil)) {
		t.Fatal("expected configuration error to be fatal")
	}
}
