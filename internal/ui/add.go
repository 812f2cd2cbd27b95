package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) addCmd() *cobra.Command {
	var (
		minutes int
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "add TIME [MINUTES]",
		Short: "Add minutes to a 12-hour clock time",
		Long: `Add a signed number of minutes to a time in "H:MM AM|PM" format.

Negative offsets must come after "--" or be passed with --minutes.

Example:
  minuteadder add "9:13 AM" 200
  minuteadder add "1:00 AM" -- -61
  minuteadder add "1:00 AM" --minutes=-61 --copy`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset := minutes
			if len(args) == 2 {
				if cmd.Flags().Changed("minutes") {
					return errors.New("pass MINUTES either as an argument or with --minutes, not both")
				}
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid minutes %q: %w", args[1], err)
				}
				offset = n
			}

			start := time.Now()
			result, err := a.adder.AddMinutes(args[0], offset)
			logAdd(a.log, args[0], offset, result, err, time.Since(start))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))

			if copyOut {
				if err := a.copy(result); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("Copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Minutes to add (may be negative)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")

	return cmd
}
