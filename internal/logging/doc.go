// Package logging constructs the slog loggers used by the CLI.
//
// Commands run silent by default; --verbose swaps in a debug-level logger on
// stderr so API request timings and resolution decisions become visible.
package logging
