// Package ffargs edits the video filter argument of an ffmpeg argument list.
//
// ffmpeg accepts a single -filter:v (or its -vf alias) per output, so plugins
// that contribute video filters must chain onto an existing value rather than
// add a second flag. The helpers here find that value, merge new filter
// expressions into it, and write the result back:
//   - Locate: first -filter:v, falling back to -vf
//   - Merge: comma-chains new expressions after an existing value
//   - Inject: Locate + Merge in place, or append a fresh -filter:v pair
//
// The lookup is purely positional; filter graph syntax is never parsed.
package ffargs
