// Package main hosts the subburn CLI entrypoint and command graph.
//
// The Cobra command tree wraps the burn-in plugin for use outside a flow
// host: it can scaffold a job from a media file, run the plugin over a job
// envelope, preview the resulting ffmpeg invocation, and describe the plugin.
// Configuration resolution and logger setup live here so subcommands stay
// declarative while the plugin semantics live in internal packages.
package main
