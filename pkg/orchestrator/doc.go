// Package orchestrator wires the builder → theme selector → renderer pipeline
// behind a single Generate call, with options for callers that need to swap
// any stage.
package orchestrator
