// Package logging assembles the structured slog loggers used across the
// tool.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standardized field keys (component, app, pid,
// run_id, outcome) so every log line carries the same shape. The warm-up
// engine takes a logger as an injected sink, which keeps progress output
// capturable in tests; NewNop provides the capture-nothing default.
package logging
