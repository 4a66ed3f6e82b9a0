package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/mdwcal/foundation/core/log"
	"github.com/msto63/mdwcal/internal/tui/calendar"
)

var browseCmd = &cobra.Command{
	Use:   "browse [value]",
	Short: "Browse months interactively",
	Long: `Opens an interactive month browser on the month of value, or the
current month.

Navigation:
  ←/→ h/l   - previous/next day
  ↑/↓ k/j   - previous/next week
  n/p       - next/previous month
  t         - today
  ?         - help
  q, Ctrl+C - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	var start any
	if len(args) > 0 {
		start = args[0]
	}

	p := tea.NewProgram(
		calendar.New(cal, names, start),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		printError("browser failed", err)
		return err
	}

	if m, ok := final.(calendar.Model); ok {
		logger.Debug("browser closed", mdwlog.Fields{
			"selected": m.Selected().Format(outputLayout),
		})
	}
	return nil
}
