package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	"github.com/msto63/mdwcal/foundation/utils/timex"
)

var infoCmd = &cobra.Command{
	Use:   "info [value]",
	Short: "Show calendar facts about a date",
	Long: `Shows weekday, ISO week, week start, month boundaries and the
position of the weekday within its month. Without a value the current
date is used.

Examples:
  caldate info 2024-02-29
  caldate info --first-weekday sunday`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := cal.Now()
		if len(args) > 0 {
			d = cal.Fix(args[0])
		}
		isoYear, isoWeek := cal.ISOWeekYear(d)

		printBlock(cmd.OutOrStdout(), dateLabel(d),
			kv("instant", d),
			kv("weekday", fmt.Sprintf("%s (%d)", names.Weekday(cal.Dotw(d)), cal.DotwInt(d))),
			kv("occurrence", nthLabel(d)),
			kv("iso week", fmt.Sprintf("%d-W%02d", isoYear, isoWeek)),
			kv("week start", cal.WeekStart(d)),
			kv("month start", cal.StartOfMonth(d)),
			kv("month end", cal.EndOfMonth(d)),
			kv("days in month", cal.LastDotm(d)),
			kv("relative", cal.Relative(d)),
		)
		return nil
	},
}

var weekdaysCmd = &cobra.Command{
	Use:   "weekdays <value> <weekday|mask>",
	Short: "List the dates of a weekday within a month",
	Long: `Lists every date of the month of value that falls on the given
weekdays. Weekdays are names ("friday", "fri"), groups ("workdays",
"weekends"), masks (1=Sunday ... 64=Saturday) or combinations ("mon|fri").

Examples:
  caldate weekdays 2024-02-10 friday
  caldate weekdays 2024-02-10 weekends`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mask, err := timex.ParseWeekday(args[1])
		if err != nil {
			return err
		}
		dates, ok := cal.DotwArrFor(args[0], mask)
		if !ok {
			return mdwerror.New("weekday mask selects no day").
				WithCode(mdwerror.CodeInvalidWeekday).
				WithOperation("caldate.weekdays").
				WithDetail("mask", args[1])
		}

		d := cal.Fix(args[0])
		fields := make([]field, 0, len(dates))
		for i, date := range dates {
			fields = append(fields, kv(strconv.Itoa(i+1), dateLabel(date)))
		}
		printBlock(cmd.OutOrStdout(), fmt.Sprintf("%s %s %d", names.Weekday(mask), names.Month(d.Month()), d.Year()), fields...)
		return nil
	},
}

var nthCmd = &cobra.Command{
	Use:   "nth <value> <n>",
	Short: "Show the n-th occurrence of every weekday in a month",
	Long: `Shows, for every weekday, the date of its n-th occurrence in the month of
value. Weekdays that occur fewer than n times are shown as "-".

Examples:
  caldate nth 2024-02-01 5
  caldate nth 2024-06-15 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return mdwerror.Wrap(err, "occurrence must be a number").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("caldate.nth").
				WithDetail("n", args[1])
		}

		d := cal.Fix(args[0])
		nth := cal.NthDayArr(d, n)

		fields := make([]field, 0, 7)
		for i := 0; i < 7; i++ {
			day := cal.DotwForInt(i)
			value := "-"
			if date, ok := nth.Get(day); ok {
				value = dateLabel(date)
			}
			fields = append(fields, kv(names.Nth(n, day), value))
		}
		printBlock(cmd.OutOrStdout(), fmt.Sprintf("%s %d", names.Month(d.Month()), d.Year()), fields...)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(weekdaysCmd)
	rootCmd.AddCommand(nthCmd)
}
