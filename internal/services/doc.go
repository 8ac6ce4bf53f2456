// Package services defines shared utilities consumed by flow plugins and the
// CLI that drives them.
//
// Key responsibilities:
//   - Context helpers that stamp job IDs and plugin identifiers for logging.
//   - Structured error markers plus the Wrap and Fixed helpers. Wrap adds
//     component context for operational failures; Fixed keeps host-facing
//     plugin messages verbatim while still classifying them.
//
// Use these helpers when wiring new plugin logic so error handling and
// observability stay uniform.
package services
