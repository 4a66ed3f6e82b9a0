package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

var (
	withinFrom      string
	withinTo        string
	withinInclusive bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two dates",
	Long: `Compares two dates: equality, same day, same ISO week, same month and
day order. With --within-from and --within-to it also reports whether a
lies between the days of the two bounds.

Examples:
  caldate compare 2024-06-15T08:00:00 2024-06-15T20:00:00
  caldate compare 2024-06-15 2024-06-16 --within-from 2024-06-10 --within-to 2024-06-20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := cal.Fix(args[0]), cal.Fix(args[1])

		fields := []field{
			kv("same", cal.Same(a, b)),
			kv("same day", cal.SameDay(a, b)),
			kv("same week", cal.SameWeek(a, b)),
			kv("same month", cal.SameMonth(a, b)),
			kv("before", cal.IsBefore(a, b)),
			kv("after", cal.IsAfter(a, b)),
		}

		from, to := cmd.Flags().Changed("within-from"), cmd.Flags().Changed("within-to")
		if from != to {
			return mdwerror.New("--within-from and --within-to must be given together").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("caldate.compare")
		}
		if from {
			fields = append(fields, kv("within", cal.Within(a, withinFrom, withinTo, withinInclusive)))
		}

		printBlock(cmd.OutOrStdout(), dateLabel(a)+" / "+dateLabel(b), fields...)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&withinFrom, "within-from", "", "start of the range checked for a")
	compareCmd.Flags().StringVar(&withinTo, "within-to", "", "end of the range checked for a")
	compareCmd.Flags().BoolVar(&withinInclusive, "inclusive", false, "include the boundary days")

	rootCmd.AddCommand(compareCmd)
}
