package ui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or create configuration",
		Long: `Print the config file path and the effective configuration.

With --init, writes the default configuration if no config file exists.

Example:
  minuteadder config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", a.configPath)

			_, statErr := os.Stat(a.configPath)
			if os.IsNotExist(statErr) {
				if !initFile {
					fmt.Fprintln(out, formatMuted("(not found, using defaults; run with --init to create it)"))
				} else {
					if err := a.config.SaveTo(a.configPath); err != nil {
						return fmt.Errorf("saving config: %w", err)
					}
					fmt.Fprintf(out, "Created %s\n", a.configPath)
				}
			}

			data, err := toml.Marshal(a.config)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with defaults if missing")

	return cmd
}
