// Package main hosts the syncctl CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into REST
// calls against a running sync daemon: status summaries, folder and device
// listings, scan triggers, error inspection, pending-share review, event
// tailing, and lifecycle control. It centralizes credential resolution and
// client construction so subcommands can focus on presentation.
//
// Keep this package lean: the API surface lives in internal/api and
// credential precedence in internal/config; commands here bind flags, issue
// calls, and format output.
package main
