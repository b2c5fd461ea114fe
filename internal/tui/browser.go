package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"recordar/internal/model"
	"recordar/internal/output"
	"recordar/internal/storage"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded from the store.
type refreshMsg struct{}

// BrowserModel is the bubbletea model for the reminder browser.
type BrowserModel struct {
	// Data
	reminders []*model.Reminder

	store *storage.Store

	// UI state
	cursor     int
	trash      bool
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// BrowserConfig holds configuration for the browser.
type BrowserConfig struct {
	Store           *storage.Store
	RefreshInterval time.Duration
}

// NewBrowserModel creates a new browser model.
func NewBrowserModel(config BrowserConfig) *BrowserModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}

	return &BrowserModel{
		store:           config.Store,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *BrowserModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.reminders)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "t":
		m.trash = !m.trash
		m.cursor = 0
		m.loadData()
		return m, nil

	case "d":
		if !m.trash {
			if r := m.selected(); r != nil {
				if err := m.store.SoftDelete(r.ID); err != nil {
					m.err = err
				} else {
					m.setMessage("Moved to trash", 2*time.Second)
					m.loadData()
				}
			}
		}
		return m, nil

	case "r":
		if m.trash {
			if r := m.selected(); r != nil {
				if err := m.store.Restore(r.ID); err != nil {
					m.err = err
				} else {
					m.setMessage("Restored", 2*time.Second)
					m.loadData()
				}
			}
		}
		return m, nil

	case "p":
		if m.trash {
			if r := m.selected(); r != nil {
				if err := m.store.Purge(r.ID); err != nil {
					m.err = err
				} else {
					m.setMessage("Purged", 2*time.Second)
					m.loadData()
				}
			}
		}
		return m, nil
	}

	return m, nil
}

// View renders the browser.
func (m *BrowserModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderList())
	sections = append(sections, HelpBar(m.trash))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the browser header.
func (m *BrowserModel) renderHeader() string {
	name := "Reminders"
	if m.trash {
		name = "Trash"
	}
	title := StyleTitle.Render(name)
	now := time.Now().Format("Mon Jan 2, 15:04")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// renderList renders the reminder list.
func (m *BrowserModel) renderList() string {
	if len(m.reminders) == 0 {
		empty := "No reminders"
		if m.trash {
			empty = "Trash is empty"
		}
		return StyleListBox.Render(StyleSubtitle.Render(empty))
	}

	rows := ""
	for i, r := range m.reminders {
		cursor := "  "
		textStyle := StyleText
		if m.trash {
			textStyle = StyleDeleted
		}
		if i == m.cursor {
			cursor = StyleSelected.Render("> ")
			textStyle = StyleSelected
		}

		line := cursor + textStyle.Render(r.Text)
		if r.Tag != "" {
			line += "  " + StyleTag.Render("#"+r.Tag)
		}
		if sched := output.FormatSchedule(r.Date, r.Time); sched != "-" {
			line += "  " + StyleSchedule.Render(sched)
		}

		if rows != "" {
			rows += "\n"
		}
		rows += line
	}

	return StyleListBox.Render(rows)
}

// loadData loads reminders from the store.
func (m *BrowserModel) loadData() {
	if m.trash {
		m.reminders = m.store.ListDeleted()
	} else {
		m.reminders = m.store.List(false)
	}
	if m.cursor >= len(m.reminders) {
		m.cursor = len(m.reminders) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.err = nil
}

// selected returns the reminder under the cursor, or nil.
func (m *BrowserModel) selected() *model.Reminder {
	if m.cursor < 0 || m.cursor >= len(m.reminders) {
		return nil
	}
	return m.reminders[m.cursor]
}

// setMessage sets a temporary message.
func (m *BrowserModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *BrowserModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *BrowserModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the browser TUI.
func Run(config BrowserConfig) error {
	model := NewBrowserModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
