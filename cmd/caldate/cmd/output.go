package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mdwcal/internal/tui"
	"github.com/msto63/mdwcal/internal/tui/calendar"
)

// outputLayout renders instants in key/value blocks
const outputLayout = "2006-01-02 15:04:05 Mon"

// field is one line of a key/value block
type field struct {
	key   string
	value string
}

func kv(key string, value interface{}) field {
	switch v := value.(type) {
	case string:
		return field{key, v}
	case time.Time:
		return field{key, v.Format(outputLayout)}
	case bool:
		return field{key, strconv.FormatBool(v)}
	default:
		return field{key, fmt.Sprint(v)}
	}
}

// printBlock writes a title followed by aligned key/value lines
func printBlock(w io.Writer, title string, fields ...field) {
	width := 0
	for _, f := range fields {
		if n := lipgloss.Width(f.key); n > width {
			width = n
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(tui.RenderTitle(title))
		b.WriteString("\n")
	}
	for _, f := range fields {
		b.WriteString("  ")
		b.WriteString(tui.KeyStyle.Width(width + 1).Render(f.key + ":"))
		b.WriteString(" ")
		b.WriteString(tui.ValueStyle.Render(f.value))
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}

// printLine writes a single unstyled value
func printLine(w io.Writer, value string) {
	fmt.Fprintln(w, value)
}

// dateLabel renders a date with localized weekday and month names
func dateLabel(t time.Time) string {
	return calendar.DateLabel(names, t)
}

// nthLabel names the occurrence of the weekday of t within its month
func nthLabel(t time.Time) string {
	return calendar.OccurrenceLabel(cal, names, t)
}
