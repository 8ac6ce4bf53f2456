package burnsubs

import (
	"fmt"
	"slices"

	"subburn/internal/flow"
)

// SelectSubtitles returns the subtitle streams of cmd that opts asks for, in
// descriptor order, capped at opts.MaxSubtitles when that is non-zero.
func SelectSubtitles(cmd *flow.FFmpegCommand, opts Options) []*flow.Stream {
	var selected []*flow.Stream
	for _, stream := range cmd.StreamsOfType(flow.CodecTypeSubtitle) {
		if wanted(stream, opts) {
			selected = append(selected, stream)
		}
	}
	if opts.MaxSubtitles > 0 && len(selected) > opts.MaxSubtitles {
		selected = selected[:opts.MaxSubtitles]
	}
	return selected
}

func wanted(stream *flow.Stream, opts Options) bool {
	if len(opts.LanguageTags) == 0 {
		return true
	}
	lang := stream.Language()
	if lang == "" && opts.AlsoBurnUntagged {
		return true
	}
	return slices.Contains(opts.LanguageTags, lang)
}

// FilterExpression is the burn-in filter for the stream at selectionIndex,
// its position in the selected list rather than its container index.
func FilterExpression(source string, selectionIndex int) string {
	return fmt.Sprintf("subtitles=filename='%s':si=%d", source, selectionIndex)
}
