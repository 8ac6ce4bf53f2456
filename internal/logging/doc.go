// Package logging assembles structured slog loggers for subburn.
//
// It owns the console and JSON handlers, maps configuration onto level and
// output routing, and exposes context helpers so plugin runs are tagged with
// their job and plugin identifiers. JobLog bridges slog to the line-oriented
// job log callback plugins write to.
package logging
