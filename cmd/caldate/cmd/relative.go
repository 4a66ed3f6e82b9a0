package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdwcal/foundation/utils/timex"
)

var (
	relativeNone bool
	timeLead     bool
)

var relativeCmd = &cobra.Command{
	Use:   "relative [value]",
	Short: "Describe a date relative to now",
	Long: `Describes a date relative to the current instant, e.g. "2 days ago",
"in 3 weeks" or "yesterday at 3:05 PM".

Examples:
  caldate relative 2024-06-13
  caldate relative --now 2024-06-15T12:00:00 2024-06-15T11:58:00
  caldate relative --none`,
	Args: func(cmd *cobra.Command, args []string) error {
		if relativeNone {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		value := timex.None()
		if !relativeNone {
			value = timex.Some(cal.Fix(args[0]))
		}
		printLine(cmd.OutOrStdout(), cal.RelativeFormat(value))
		return nil
	},
}

var timeCmd = &cobra.Command{
	Use:   "time <value>",
	Short: "Print the clock time of a date",
	Long: `Prints the clock time of a date in the configured 12 or 24 hour format.

Examples:
  caldate time 2024-06-15T15:05:00
  caldate time --lead --time-format 24 2024-06-15T09:05:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printLine(cmd.OutOrStdout(), cal.TimeString(args[0], timeLead))
		return nil
	},
}

func init() {
	relativeCmd.Flags().BoolVar(&relativeNone, "none", false, "describe an absent date")
	timeCmd.Flags().BoolVar(&timeLead, "lead", false, "pad hours to two digits")

	rootCmd.AddCommand(relativeCmd)
	rootCmd.AddCommand(timeCmd)
}
