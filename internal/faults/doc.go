// Package faults defines the error taxonomy and run context helpers shared by
// the organizer pipeline.
//
// Key responsibilities:
//   - Sentinel markers (extraction, filesystem, configuration, validation) plus
//     the Wrap helper that stamps stage and operation context onto a failure.
//   - Severity mapping so the driver can tell per-file failures from fatal
//     ones without inspecting message text.
//   - Context helpers that stamp run identifiers and file names for logging.
//
// Use these helpers when adding new pipeline steps so error reporting and log
// correlation stay uniform across the run.
package faults
