package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

var monthCmd = &cobra.Command{
	Use:   "month <year> <month>",
	Short: "Show the boundaries of a month",
	Long: `Shows the first and last instant of a month. The month is a number
(1-12) or a name in the configured locale or English.

Examples:
  caldate month 2024 2
  caldate month 2024 february
  caldate month --locale de 2024 märz`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseNumber("year", args[0], -271820, 275759)
		if err != nil {
			return err
		}
		month, err := parseMonth(args[1])
		if err != nil {
			return err
		}

		start := cal.StartForYearAndMonth(year, month)
		printBlock(cmd.OutOrStdout(), fmt.Sprintf("%s %d", names.Month(month), year),
			kv("start", start),
			kv("end", cal.EndForYearAndMonth(year, month)),
			kv("days", cal.LastDotm(start)),
			kv("first weekday", names.Weekday(cal.Dotw(start))),
		)
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:   "week <year> <week>",
	Short: "Show the boundaries of a week of the year",
	Long: `Shows the seven days starting at January 1st plus (week-1) weeks.
Weeks counted this way start on the weekday of January 1st and may differ
from ISO weeks.

Examples:
  caldate week 2024 1
  caldate week 2024 23`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseNumber("year", args[0], -271820, 275759)
		if err != nil {
			return err
		}
		week, err := parseNumber("week", args[1], 1, 53)
		if err != nil {
			return err
		}

		start := cal.StartForYearAndWeek(year, week)
		printBlock(cmd.OutOrStdout(), fmt.Sprintf("%s %d, %d", names.WeekShort, week, year),
			kv("start", start),
			kv("end", cal.EndForYearAndWeek(year, week)),
			kv("iso week of start", cal.ISOWeek(start)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(weekCmd)
}

func parseNumber(name, s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, mdwerror.Wrap(err, name+" must be a number").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail(name, s)
	}
	if n < min || n > max {
		return 0, mdwerror.New(fmt.Sprintf("%s %d out of range %d..%d", name, n, min, max)).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail(name, n)
	}
	return n, nil
}

// parseMonth reads a month number or a localized or English month name
func parseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 || n > 12 {
			return 0, mdwerror.New(fmt.Sprintf("month %d out of range 1..12", n)).
				WithCode(mdwerror.CodeValueOutOfRange).
				WithDetail("month", n)
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(s, names.Month(m)) || strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, mdwerror.New(fmt.Sprintf("unknown month %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("month", s)
}
