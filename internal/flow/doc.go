// Package flow models the workflow engine's plugin contract.
//
// The engine hands every plugin an InputArgs envelope (resolved inputs, shared
// variables, the current file object, and a job log callback) and expects an
// OutputArgs envelope back that names the output route to follow. ffmpeg
// command plugins additionally share a FFmpegCommand descriptor inside the
// variables: a "Begin Command" step initializes it, intermediate plugins edit
// stream and global arguments, and an "Execute" step turns it into an argv.
//
// JSON field names follow the engine's wire format so job files round-trip,
// including the engine's overallOuputArguments spelling.
package flow
