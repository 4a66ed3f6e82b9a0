// ============================================================================
// mdwcal - Calendar toolkit
// ============================================================================
//
// Package:     calendar
// Description: Bubbletea month browser. Shows a month grid starting at the
//              configured first weekday with ISO week numbers and a status
//              line describing the selected day.
// Author:      Mike Stoffels
// Created:     2025-08-14
// License:     MIT
// ============================================================================

package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mdwcal/foundation/utils/timex"
	"github.com/msto63/mdwcal/internal/tui"
)

// Model is the Bubbletea model of the month browser
type Model struct {
	cal   *timex.Calendar
	names timex.Names
	keys  keyMap
	help  help.Model

	// Selected day at midnight
	cursor time.Time
	width  int
}

// New creates a browser with the cursor on the day of start. A nil start
// selects today.
func New(cal *timex.Calendar, names timex.Names, start any) Model {
	if start == nil {
		start = cal.Now()
	}
	return Model{
		cal:    cal,
		names:  names,
		keys:   defaultKeyMap(),
		help:   help.New(),
		cursor: cal.SetStartOfDay(start),
	}
}

// Selected returns the selected day at midnight
func (m Model) Selected() time.Time {
	return m.cursor
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.cursor = m.step(m.cursor, -1)
		case key.Matches(msg, m.keys.Right):
			m.cursor = m.step(m.cursor, 1)
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.step(m.cursor, -7)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.step(m.cursor, 7)
		case key.Matches(msg, m.keys.NextMonth):
			m.cursor = m.moveMonth(1)
		case key.Matches(msg, m.keys.PrevMonth):
			m.cursor = m.moveMonth(-1)
		case key.Matches(msg, m.keys.Today):
			m.cursor = m.cal.SetStartOfDay(m.cal.Now())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// moveMonth moves the cursor by n months, keeping the day of month where
// the target month is long enough
func (m Model) moveMonth(n int) time.Time {
	first := m.cal.AddMonths(m.cal.StartOfMonth(m.cursor), n)
	day := m.cal.Day(m.cursor)
	if last := m.cal.LastDotm(first); day > last {
		day = last
	}
	return m.step(first, day-1)
}

// step moves t by n calendar days and returns the start of that day. The
// move is done from noon so daylight saving changes cannot skip a day.
func (m Model) step(t time.Time, n int) time.Time {
	return m.cal.SetStartOfDay(m.cal.AddDays(m.cal.Normalize(t), n))
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.RenderTitle(fmt.Sprintf("%s %d", m.names.Month(m.cursor.Month()), m.cursor.Year())))
	b.WriteString("  ")
	b.WriteString(tui.SubtitleStyle.Render(fmt.Sprintf("%s %d", m.names.WeekShort, m.cal.ISOWeek(m.cursor))))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(tui.StatusBarStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(tui.RenderHelp(m.help.View(m.keys)))

	return b.String()
}

// gridStart returns the first day shown: the first weekday on or before
// the first of the month
func (m Model) gridStart() time.Time {
	first := m.cal.StartOfMonth(m.cursor)
	offset := (m.cal.DotwInt(first) - isoIndex(m.cal.FirstWeekday()) + 7) % 7
	return m.step(first, -offset)
}

func (m Model) renderGrid() string {
	firstIdx := isoIndex(m.cal.FirstWeekday()) - 1
	today := m.cal.Now()

	header := []string{tui.WeekNumberStyle.Render(m.names.WeekShort)}
	for i := 0; i < 7; i++ {
		day := m.cal.DotwForInt((firstIdx + i) % 7)
		header = append(header, tui.HeaderCellStyle.Render(m.names.WeekdayShort(day)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	end := m.cal.EndOfMonth(m.cursor)
	for row := m.gridStart(); !row.After(end); row = m.step(row, 7) {
		// The ISO week holding most days of the row
		cells := []string{tui.WeekNumberStyle.Render(fmt.Sprint(m.cal.ISOWeek(m.step(row, 3))))}
		for i := 0; i < 7; i++ {
			day := m.step(row, i)
			style := tui.DayStyle
			switch {
			case m.cal.SameDay(day, m.cursor):
				style = tui.SelectedDayStyle
			case m.cal.SameDay(day, today):
				style = tui.TodayStyle
			case !m.cal.SameMonth(day, m.cursor):
				style = tui.OutsideDayStyle
			}
			cells = append(cells, style.Render(fmt.Sprint(m.cal.Day(day))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) status() string {
	return strings.Join([]string{
		DateLabel(m.names, m.cursor),
		OccurrenceLabel(m.cal, m.names, m.cursor),
		m.cal.RelativeFormat(timex.Some(m.cursor)),
	}, " · ")
}

// DateLabel renders a date with localized weekday and month names,
// e.g. "Saturday, 15 June 2024"
func DateLabel(names timex.Names, t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		names.Weekday(timex.MaskForWeekday(t.Weekday())), t.Day(), names.Month(t.Month()), t.Year())
}

// OccurrenceLabel names the position of the weekday of t within its month,
// e.g. "3rd Saturday"
func OccurrenceLabel(cal *timex.Calendar, names timex.Names, t time.Time) string {
	k := (cal.Day(t)-1)/7 + 1
	day := cal.Dotw(t)
	if d, ok := cal.NthDayArr(t, k).Get(day); ok && cal.SameDay(d, t) {
		return names.Nth(k, day)
	}
	return "-"
}

// isoIndex returns the Monday=1 ... Sunday=7 ordinal of a single-day mask
func isoIndex(mask timex.WeekdayMask) int {
	wd, ok := mask.Weekday()
	if !ok {
		return 1
	}
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
