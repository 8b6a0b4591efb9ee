package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExtraction    = errors.New("extraction error")
	ErrFileSystem    = errors.New("filesystem error")
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
)

// Severity describes how the driver reacts to a failure.
type Severity string

const (
	// SeverityRecovered failures are absorbed where they happen.
	SeverityRecovered Severity = "recovered"
	// SeverityFile failures are recorded against one file; the batch continues.
	SeverityFile Severity = "file"
	// SeverityFatal failures stop the run before any file is touched.
	SeverityFatal Severity = "fatal"
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFileSystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// SeverityOf maps an error to the reaction the driver should take.
func SeverityOf(err error) Severity {
	switch {
	case err == nil:
		return SeverityRecovered
	case errors.Is(err, ErrConfiguration):
		return SeverityFatal
	case errors.Is(err, ErrExtraction):
		return SeverityRecovered
	default:
		return SeverityFile
	}
}

// IsFatal reports whether err must abort the run.
func IsFatal(err error) bool {
	return SeverityOf(err) == SeverityFatal
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
