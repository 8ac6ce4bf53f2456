package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subburn/internal/flow"
	"subburn/internal/jobfile"
	"subburn/internal/language"
	"subburn/internal/logging"
	"subburn/internal/media/ffprobe"
)

func newBeginCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "begin <media>",
		Short: "Probe a media file and emit an initialized job envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "begin")

			mediaPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve media path: %w", err)
			}

			probeCtx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.FFprobe.TimeoutSeconds)*time.Second)
			defer cancel()
			started := time.Now()
			probe, err := ffprobe.Inspect(probeCtx, cfg.FFprobe.Binary, mediaPath)
			if err != nil {
				return err
			}
			logger.Info("media probed",
				logging.String("path", mediaPath),
				logging.Duration("elapsed", time.Since(started)),
				logging.Int("video_streams", probe.VideoStreamCount()),
				logging.Int("audio_streams", probe.AudioStreamCount()),
				logging.Int("subtitle_streams", probe.SubtitleStreamCount()),
				logging.String("subtitle_languages", subtitleLanguages(probe)),
			)

			job := &jobfile.Job{
				Inputs: map[string]any{},
				Variables: &flow.Variables{
					FFmpegCommand: flow.NewCommand(mediaPath, probe),
					User:          map[string]string{},
				},
				InputFileObj: flow.NewFileObject(mediaPath),
			}
			if outputPath != "" {
				return jobfile.Write(cmd.Context(), outputPath, job)
			}
			return writeJSON(cmd, job)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the job envelope to this file instead of stdout")
	return cmd
}

// subtitleLanguages names the languages of the probed subtitle streams in
// stream order, e.g. "English, Japanese, Unknown".
func subtitleLanguages(probe ffprobe.Result) string {
	var names []string
	for _, stream := range probe.Streams {
		if strings.EqualFold(stream.CodecType, "subtitle") {
			names = append(names, language.DisplayName(stream.Tags.Language))
		}
	}
	return strings.Join(names, ", ")
}
