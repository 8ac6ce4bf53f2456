// Package burnsubs implements the "Burn in subtitles" ffmpeg command plugin.
//
// The plugin picks subtitle streams from the shared ffmpeg command descriptor
// by language tag, caps how many are used, and adds one subtitles= filter per
// pick to the video filter chain so ffmpeg renders them into the picture.
// The filters are merged into the first argument list found carrying a video
// filter rather than added under a second -filter:v flag.
//
// Run validates in a fixed order (inputs, descriptor initialization, video
// stream) and never edits the descriptor when a check fails.
package burnsubs
