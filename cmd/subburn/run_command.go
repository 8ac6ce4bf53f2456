package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subburn/internal/jobfile"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "run [job.json|-]",
		Short: "Run the burn-in plugin against a job envelope",
		Long: "Reads a job envelope (inputs, variables, inputFileObj), burns the selected\n" +
			"subtitle streams into the ffmpeg command it carries, and writes the result\n" +
			"envelope. Reads stdin when the path is omitted or \"-\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := jobfile.Stdin
			if len(args) == 1 {
				source = strings.TrimSpace(args[0])
			}
			if inPlace && source == jobfile.Stdin {
				return errors.New("--in-place requires a job file path")
			}
			if inPlace && outputPath != "" {
				return errors.New("--in-place and --output are mutually exclusive")
			}

			job, err := jobfile.Read(source, cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, err := ctx.runPlugin(cmd.Context(), job)
			if err != nil {
				return err
			}

			switch {
			case inPlace:
				if err := jobfile.Write(cmd.Context(), source, nextJob(job, result)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (output %d)\n", source, result.OutputNumber)
				return nil
			case outputPath != "":
				return jobfile.Write(cmd.Context(), outputPath, result)
			default:
				return writeJSON(cmd, result)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result envelope to this file instead of stdout")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Rewrite the job file as the next plugin's input")
	return cmd
}
