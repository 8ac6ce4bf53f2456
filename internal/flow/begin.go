package flow

import (
	"fmt"
	"path/filepath"
	"strings"

	"subburn/internal/media/ffprobe"
)

// NewCommand builds an initialized descriptor for path from its probe
// result, mapping every stream with no further arguments.
func NewCommand(path string, probe ffprobe.Result) *FFmpegCommand {
	cmd := &FFmpegCommand{
		Init:                  true,
		InputFiles:            []string{path},
		Streams:               make([]Stream, 0, len(probe.Streams)),
		Container:             strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
		OverallInputArguments: []string{},
		OverallOuputArguments: []string{},
	}
	for _, ps := range probe.Streams {
		stream := Stream{
			Index:      ps.Index,
			CodecName:  ps.CodecName,
			CodecType:  ps.CodecType,
			MapArgs:    []string{"-map", fmt.Sprintf("0:%d", ps.Index)},
			InputArgs:  []string{},
			OutputArgs: []string{},
		}
		if !ps.Tags.IsZero() {
			stream.Tags = &StreamTags{Language: ps.Tags.Language, Title: ps.Tags.Title}
		}
		cmd.Streams = append(cmd.Streams, stream)
	}
	return cmd
}
