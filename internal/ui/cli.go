package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/minuteadder/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// MinuteAdder adds a minute offset to a 12-hour clock string.
type MinuteAdder interface {
	AddMinutes(timeStr string, minutes int) (string, error)
}

// App holds the CLI application state.
type App struct {
	adder  MinuteAdder
	config *config.Config
	root   *cobra.Command

	configPath string
	debug      bool // Enable debug logging
	noColor    bool

	log      zerolog.Logger
	closeLog func() error
	copy     func(string) error // clipboard writer
}

// NewApp creates a new CLI application backed by the given adder.
// Configuration is loaded when a command runs, after flags are parsed.
func NewApp(adder MinuteAdder) *App {
	a := &App{
		adder:    adder,
		log:      zerolog.Nop(),
		closeLog: func() error { return nil },
		copy:     clipboard.WriteAll,
	}

	a.root = &cobra.Command{
		Use:   "minuteadder",
		Short: "Add minutes to 12-hour clock times",
		Long: `Minuteadder adds a signed number of minutes to a 12-hour clock time
such as "9:13 AM" and prints the wrapped result.

Without a subcommand it prints the configured sample invocations.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExamples(cmd.OutOrStdout())
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the config file")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.examplesCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

// setup loads configuration and prepares output and logging for a command.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg

	if a.noColor || !cfg.Output.Color || !isTerminal(cmd.OutOrStdout()) {
		DisableColor()
	}

	if a.debug {
		log, closeFn, err := openDebugLog(cfg.Debug.LogPath)
		if err != nil {
			return err
		}
		a.log, a.closeLog = log, closeFn
	}

	a.log.Debug().
		Str("event", "command_start").
		Str("command", cmd.CommandPath()).
		Str("config", a.configPath).
		Int("samples", len(cfg.Samples)).
		Msg("running command")

	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minuteadder %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes and closes the debug log, if any.
func (a *App) Close() error {
	closeFn := a.closeLog
	a.closeLog = func() error { return nil }
	a.log = zerolog.Nop()
	return closeFn()
}
