// Package main hosts the deskorg CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once per invocation, builds
// the structured logger, and wires the extractor, classifier and organizer
// for the organize command. Commands stay thin: behaviour lives in the
// internal packages and is surfaced here through flags and rendering.
package main
