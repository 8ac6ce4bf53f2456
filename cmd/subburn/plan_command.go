package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subburn/internal/flow"
	"subburn/internal/jobfile"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var ffmpegBinary string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan <job.json|->",
		Short: "Show the ffmpeg command the flow would execute after burn-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(outputPath) == "" {
				return errors.New("--output-path is required")
			}
			job, err := jobfile.Read(strings.TrimSpace(args[0]), cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, err := ctx.runPlugin(cmd.Context(), job)
			if err != nil {
				return err
			}

			command := result.Variables.FFmpegCommand
			argv, err := flow.BuildArgs(command, planInputPath(command, result.OutputFileObj), outputPath)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, append([]string{ffmpegBinary}, argv...))
			}
			fmt.Fprintln(cmd.OutOrStdout(), shellJoin(append([]string{ffmpegBinary}, argv...)))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output-path", "", "Output media path for the planned ffmpeg run")
	cmd.Flags().StringVar(&ffmpegBinary, "ffmpeg", "ffmpeg", "ffmpeg binary shown in the plan")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the argv as a JSON array")
	return cmd
}

func planInputPath(command *flow.FFmpegCommand, file *flow.FileObject) string {
	if command != nil && len(command.InputFiles) > 0 {
		return command.InputFiles[0]
	}
	if file != nil {
		return file.ID
	}
	return ""
}

func shellJoin(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$`;&|<>()*?[]{}") {
			quoted[i] = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
