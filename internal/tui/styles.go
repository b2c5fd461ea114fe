// Package tui provides the terminal user interface for browsing reminders.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the browser.
var (
	ColorPrimary  = lipgloss.Color("#ED4A98") // Pink
	ColorMuted    = lipgloss.Color("#6B7280") // Gray
	ColorWarning  = lipgloss.Color("#F59E0B") // Yellow
	ColorError    = lipgloss.Color("#EF4444") // Red
	ColorSuccess  = lipgloss.Color("#10B981") // Green
	ColorSchedule = lipgloss.Color("#3B82F6") // Blue
	ColorBorder   = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleText is used for reminder text.
	StyleText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// StyleSelected is used for the row under the cursor.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleTag is used for reminder tags.
	StyleTag = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleSchedule is used for date and time values.
	StyleSchedule = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSchedule)

	// StyleDeleted is used for reminders in the trash.
	StyleDeleted = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorMuted)

	// StyleWarning is used for transient status messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for the help bar at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleListBox wraps the reminder list.
	StyleListBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// HelpBar renders the keyboard shortcut help line.
func HelpBar(trash bool) string {
	type binding struct{ key, desc string }

	bindings := []binding{
		{"j/k", "move"},
		{"t", "toggle trash"},
	}
	if trash {
		bindings = append(bindings,
			binding{"r", "restore"},
			binding{"p", "purge"},
		)
	} else {
		bindings = append(bindings, binding{"d", "delete"})
	}
	bindings = append(bindings, binding{"q", "quit"})

	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += StyleSubtitle.Render("  ")
		}
		out += StyleHelpKey.Render(b.key) + StyleSubtitle.Render(" "+b.desc)
	}
	return StyleHelp.Render(out)
}
