// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties and tags
//   - Format: container-level metadata
//
// Entry points:
//   - Inspect: executes ffprobe and returns parsed Result
//   - Parse: decodes a previously captured ffprobe JSON payload
package ffprobe
