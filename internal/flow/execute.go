package flow

import (
	"fmt"
	"strconv"
	"strings"

	"subburn/internal/services"
)

const (
	placeholderOutputIndex     = "{outputIndex}"
	placeholderOutputTypeIndex = "{outputTypeIndex}"
)

// BuildArgs assembles the ffmpeg argv an Execute step would run for cmd. The
// descriptor is not modified.
//
// Layout: -y, global input args, per-stream input args, -i input, then for
// each kept stream its map args followed by its output args (a stream copy
// when it has none), global output args, and finally the output path.
func BuildArgs(cmd *FFmpegCommand, inputPath, outputPath string) ([]string, error) {
	if cmd == nil || !cmd.Init {
		return nil, ErrCommandNotInitialized
	}
	if strings.TrimSpace(inputPath) == "" {
		return nil, services.Wrap(services.ErrValidation, "flow", "build args", "input path is required", nil)
	}
	if strings.TrimSpace(outputPath) == "" {
		return nil, services.Wrap(services.ErrValidation, "flow", "build args", "output path is required", nil)
	}

	inputArgs := append([]string{}, cmd.OverallInputArguments...)
	var streamArgs []string
	typeCounts := make(map[string]int)
	outputIndex := 0
	for i := range cmd.Streams {
		stream := &cmd.Streams[i]
		if stream.Removed {
			continue
		}
		kind := strings.ToLower(stream.CodecType)
		typeIndex := typeCounts[kind]
		typeCounts[kind]++

		inputArgs = append(inputArgs, stream.InputArgs...)
		streamArgs = append(streamArgs, stream.MapArgs...)
		if len(stream.OutputArgs) == 0 {
			streamArgs = append(streamArgs, fmt.Sprintf("-c:%d", outputIndex), "copy")
		} else {
			for _, arg := range stream.OutputArgs {
				arg = strings.ReplaceAll(arg, placeholderOutputIndex, strconv.Itoa(outputIndex))
				arg = strings.ReplaceAll(arg, placeholderOutputTypeIndex, strconv.Itoa(typeIndex))
				streamArgs = append(streamArgs, arg)
			}
		}
		outputIndex++
	}

	argv := make([]string, 0, 4+len(inputArgs)+len(streamArgs)+len(cmd.OverallOuputArguments))
	argv = append(argv, "-y")
	argv = append(argv, inputArgs...)
	argv = append(argv, "-i", inputPath)
	argv = append(argv, streamArgs...)
	argv = append(argv, cmd.OverallOuputArguments...)
	argv = append(argv, outputPath)
	return argv, nil
}
