// ============================================================================
// mdwcal - Calendar toolkit
// ============================================================================
//
// Package:     tui
// Description: Shared color palette and styles of the terminal surfaces
// Author:      Mike Stoffels
// Created:     2025-08-14
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBg        = lipgloss.Color("#1F2937")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// Key/value styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	// Calendar grid styles
	DayStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			Width(4).
			Align(lipgloss.Right)

	OutsideDayStyle = DayStyle.
			Foreground(ColorMuted)

	TodayStyle = DayStyle.
			Foreground(ColorSecondary).
			Bold(true)

	SelectedDayStyle = DayStyle.
				Foreground(ColorFg).
				Background(ColorPrimary).
				Bold(true)

	WeekNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(4).
			Align(lipgloss.Right)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Width(4).
			Align(lipgloss.Right)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
