// Package config loads, normalizes, and validates deskorg configuration data.
//
// It supplies repository defaults (including the built-in keyword tables),
// expands user paths, reads TOML files, and honours the DESKORG_ROOT
// environment fallback. The Config type centralizes every knob the CLI and the
// organizer need so the root directory, extraction limits, and keyword lists
// are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, de-duplicated keyword lists, and clear validation errors.
package config
