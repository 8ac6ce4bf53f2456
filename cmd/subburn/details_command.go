package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subburn/internal/burnsubs"
)

func newDetailsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "details",
		Short:       "Describe the burn-in plugin and its inputs",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			details := burnsubs.Details()
			if jsonOutput {
				return writeJSON(cmd, details)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s v%s)\n", details.Name, burnsubs.ID, burnsubs.Version)
			fmt.Fprintln(out, details.Description)
			fmt.Fprintf(out, "Requires engine %s\n", details.RequiresVersion)

			if isTerminal(out) {
				rows := make([][]string, 0, len(details.Inputs))
				for _, input := range details.Inputs {
					rows = append(rows, []string{input.Name, input.Label, input.Type, strconv.Quote(input.DefaultValue), input.InputUI.Type})
				}
				fmt.Fprintln(out, renderTable(
					"Inputs",
					[]string{"Input", "Label", "Type", "Default", "Widget"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
			} else {
				for _, input := range details.Inputs {
					fmt.Fprintf(out, "input %s type=%s default=%s\n", input.Name, input.Type, strconv.Quote(input.DefaultValue))
				}
			}
			for _, output := range details.Outputs {
				fmt.Fprintf(out, "Output %d: %s\n", output.Number, strings.TrimSpace(output.Tooltip))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plugin details as JSON")
	return cmd
}
