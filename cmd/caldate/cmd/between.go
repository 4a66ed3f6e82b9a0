package cmd

import (
	"github.com/spf13/cobra"
)

var betweenCmd = &cobra.Command{
	Use:   "between <a> <b>",
	Short: "Count days, weeks, months and years between two dates",
	Long: `Counts the calendar distance between two dates. The order of the
arguments does not matter.

Examples:
  caldate between 2024-01-31 2024-03-01
  caldate between 1999-12-31 2024-06-15`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := cal.Fix(args[0]), cal.Fix(args[1])

		printBlock(cmd.OutOrStdout(), dateLabel(a)+" .. "+dateLabel(b),
			kv("days", cal.DaysBetween(a, b)),
			kv("weeks", cal.WeeksBetween(a, b)),
			kv("months", cal.MonthsBetween(a, b)),
			kv("years", cal.YearsBetween(a, b)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(betweenCmd)
}
