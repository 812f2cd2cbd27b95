package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print the configured sample invocations",
		Long: `Run AddMinutes on every sample listed in the config file and print
the results. The built-in samples cover wraparound at midnight and noon,
negative offsets, and whole-day offsets.

Example:
  minuteadder examples`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExamples(cmd.OutOrStdout())
		},
	}
}

func (a *App) runExamples(w io.Writer) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader("Running AddMinutes(timeStr, minutesToAdd)..."))
	return a.printSamples(w, a.config.Samples)
}
