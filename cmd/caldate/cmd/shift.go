package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	"github.com/msto63/mdwcal/foundation/utils/timex"
)

var (
	setStartOfDay bool
	setEndOfDay   bool
	setSameDayAs  string
)

var unitAliases = map[string]timex.Unit{
	"s":   timex.UnitSecond,
	"sec": timex.UnitSecond,
	"m":   timex.UnitMinute,
	"min": timex.UnitMinute,
	"h":   timex.UnitHour,
	"d":   timex.UnitDay,
	"w":   timex.UnitWeek,
	"mo":  timex.UnitMonth,
	"y":   timex.UnitYear,
}

var shiftCmd = &cobra.Command{
	Use:   "shift <value> <amount> <unit>",
	Short: "Add or subtract an amount of a unit",
	Long: `Adds amount units to a date; a negative amount subtracts. Units are
second, minute, hour, day, week, month and year (plural forms and s, m, h,
d, w, mo, y are accepted). Months and years keep the day of month and
overflow into the next month, so January 31st plus one month is March 2nd
or 3rd.

Examples:
  caldate shift 2024-06-15 3 days
  caldate shift 2024-01-31 1 month
  caldate shift 2024-06-15T12:00:00 -90 min`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseNumber("amount", args[1], -1<<31, 1<<31-1)
		if err != nil {
			return err
		}
		unit, err := parseUnit(args[2])
		if err != nil {
			return err
		}

		result, _ := cal.Shift(args[0], amount, unit)
		printLine(cmd.OutOrStdout(), result.Format(outputLayout))
		return nil
	},
}

var roundCmd = &cobra.Command{
	Use:   "round <value>",
	Short: "Round a date to the nearest five minutes",
	Long: `Rounds a date to the nearest multiple of five minutes. Seconds are
dropped first, so 10:32:45 rounds to 10:30.

Examples:
  caldate round 2024-06-15T10:33:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printLine(cmd.OutOrStdout(), cal.Round(args[0]).Format(outputLayout))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <value>",
	Short: "Move a date to the start or end of its day, or to another day",
	Long: `Moves a date within or across days. Exactly one of --start-of-day,
--end-of-day or --same-day-as is required. --same-day-as keeps the clock
time of value and takes the date of the given argument.

Examples:
  caldate set --start-of-day 2024-06-15T10:20:30
  caldate set --same-day-as 2024-01-02 2024-06-15T10:20:30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := 0
		for _, name := range []string{"start-of-day", "end-of-day", "same-day-as"} {
			if cmd.Flags().Changed(name) {
				selected++
			}
		}
		if selected != 1 {
			return mdwerror.New("exactly one of --start-of-day, --end-of-day, --same-day-as is required").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("caldate.set")
		}

		result := cal.Fix(args[0])
		switch {
		case setStartOfDay:
			result = cal.SetStartOfDay(result)
		case setEndOfDay:
			result = cal.SetEndOfDay(result)
		default:
			result = cal.SetSameDay(result, setSameDayAs)
		}
		printLine(cmd.OutOrStdout(), result.Format(outputLayout))
		return nil
	},
}

func init() {
	shiftCmd.Flags().SetInterspersed(false)

	setCmd.Flags().BoolVar(&setStartOfDay, "start-of-day", false, "move to 00:00:00")
	setCmd.Flags().BoolVar(&setEndOfDay, "end-of-day", false, "move to 23:59:59")
	setCmd.Flags().StringVar(&setSameDayAs, "same-day-as", "", "move to the date of this value")

	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(setCmd)
}

func parseUnit(s string) (timex.Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if unit, ok := unitAliases[name]; ok {
		return unit, nil
	}
	name = strings.TrimSuffix(name, "s")
	switch unit := timex.Unit(name); unit {
	case timex.UnitSecond, timex.UnitMinute, timex.UnitHour, timex.UnitDay,
		timex.UnitWeek, timex.UnitMonth, timex.UnitYear:
		return unit, nil
	}
	if unit, ok := unitAliases[name]; ok {
		return unit, nil
	}
	return "", mdwerror.New(fmt.Sprintf("unknown unit %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("unit", s)
}
