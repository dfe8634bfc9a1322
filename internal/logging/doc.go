// Package logging assembles structured slog loggers and formatting helpers used
// across cdvrpass.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so DVR requests are tagged with
// the run's correlation ID and the report section being assembled. Logs go to
// stderr by default so they never interleave with the report on stdout.
package logging
