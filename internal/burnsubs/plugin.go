package burnsubs

import (
	"encoding/json"
	"fmt"
	"strings"

	"subburn/internal/ffargs"
	"subburn/internal/flow"
	"subburn/internal/services"
)

// ErrNoVideoStream is returned when the descriptor has no video stream to
// burn into.
var ErrNoVideoStream = services.Fixed(services.ErrNotFound, "No video stream found in file")

// Plugin burns selected subtitle streams into the video stream.
type Plugin struct{}

// New returns the plugin.
func New() *Plugin {
	return &Plugin{}
}

var _ flow.Plugin = (*Plugin)(nil)

// Details describes the plugin to the engine.
func (p *Plugin) Details() flow.Details {
	return Details()
}

// Run selects subtitle streams and merges their burn-in filters into the
// ffmpeg command carried by args. On success the same file object and
// variables are returned on output 1.
func (p *Plugin) Run(args *flow.InputArgs) (*flow.OutputArgs, error) {
	var inputs map[string]any
	if args != nil {
		inputs = args.Inputs
	}
	opts, err := ResolveOptions(inputs)
	if err != nil {
		return nil, err
	}

	if err := flow.CheckFFmpegCommandInit(args); err != nil {
		return nil, err
	}
	cmd := args.Variables.FFmpegCommand

	video := cmd.FirstStreamOfType(flow.CodecTypeVideo)
	if video == nil {
		return nil, ErrNoVideoStream
	}

	result := &flow.OutputArgs{
		OutputFileObj: args.InputFileObj,
		OutputNumber:  1,
		Variables:     args.Variables,
	}

	subtitles := SelectSubtitles(cmd, opts)
	if len(subtitles) == 0 {
		args.Log("No subtitle streams found, skipping subtitle burn-in")
		return result, nil
	}
	if opts.MaxSubtitles == 0 {
		args.Log(fmt.Sprintf("No max subtitles limit set, burning all %d subtitle streams", len(subtitles)))
	} else {
		args.Log(fmt.Sprintf("Left over streams (%d): %s", len(subtitles), dump(subtitles)))
	}

	filters := buildFilters(args, subtitles)
	applyFilters(args, cmd, video, filters)

	args.Log(fmt.Sprintf("Added %d subtitle filters to video stream", len(filters)))
	return result, nil
}

func buildFilters(args *flow.InputArgs, subtitles []*flow.Stream) []string {
	source := ""
	if args.InputFileObj != nil {
		source = args.InputFileObj.ID
	}
	filters := make([]string, 0, len(subtitles))
	for i, stream := range subtitles {
		args.Log(fmt.Sprintf("Subtitle stream found: 0:%d(%d): %s %s(%s)",
			stream.Index, i, stream.CodecName, stream.Title(), tagLanguage(stream)))
		args.Log("Stream details: " + dump(stream))
		filters = append(filters, FilterExpression(source, i))
	}
	return filters
}

// applyFilters writes filters to the first place that already holds a video
// filter: the global output arguments, then the video stream's lookup
// arguments (merged into its output arguments), otherwise a fresh flag on
// the video stream's output arguments.
func applyFilters(args *flow.InputArgs, cmd *flow.FFmpegCommand, video *flow.Stream, filters []string) {
	if m, ok := ffargs.Locate(cmd.OverallOuputArguments); ok {
		args.Log("Found existing overall video filter: " + m.Value)
		args.Log("Merging subtitle filters with existing overall filters")
		cmd.OverallOuputArguments = ffargs.Inject(cmd.OverallOuputArguments, filters)
		return
	}
	// The stream's existing filter is read from StreamArgs but the merge
	// targets OutputArgs; Inject appends there when OutputArgs has no flag.
	if m, ok := ffargs.Locate(video.StreamArgs); ok {
		args.Log("Found existing stream video filter: " + m.Value)
		args.Log("Merging subtitle filters with existing stream filters")
		video.OutputArgs = ffargs.Inject(video.OutputArgs, filters)
		return
	}
	args.Log("No existing video filters found, adding subtitle filters to stream")
	video.OutputArgs = append(video.OutputArgs, ffargs.FlagFilterV, strings.Join(filters, ffargs.Separator))
}

// tagLanguage is the language tag as written in the descriptor.
func tagLanguage(stream *flow.Stream) string {
	if stream.Tags == nil {
		return ""
	}
	return stream.Tags.Language
}

func dump(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(raw)
}
