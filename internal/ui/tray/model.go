package tray

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/live"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// OpenMsg is dispatched when a notification is clicked.
type OpenMsg struct {
	Notification model.Notification
}

// ClearMsg asks the parent to delete every notification.
type ClearMsg struct{}

// CloseMsg asks the parent to hide the tray.
type CloseMsg struct{}

// Model is the notification tray overlay.
type Model struct {
	tray   *live.Tray
	cursor int
	keys   *keys.KeyMap
	width  int
	height int
}

func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetTray points the overlay at the session's notifications. nil clears it.
func (m *Model) SetTray(t *live.Tray) {
	m.tray = t
	m.cursor = 0
}

// SetSize updates the tray dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) items() []model.Notification {
	if m.tray == nil {
		return nil
	}
	return m.tray.Items()
}

// Update handles messages for the tray.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}

	switch {
	case key.Matches(k, m.keys.Back), key.Matches(k, m.keys.Notifications):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(k, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(k, m.keys.Select):
		if len(items) == 0 {
			return m, nil
		}
		n := items[m.cursor]
		return m, func() tea.Msg { return OpenMsg{Notification: n} }

	case key.Matches(k, m.keys.ClearAll):
		if len(items) == 0 {
			return m, nil
		}
		return m, func() tea.Msg { return ClearMsg{} }
	}

	return m, nil
}

// View renders the tray panel.
func (m Model) View() string {
	width := min(max(m.width-8, 30), 72)
	items := m.items()

	header := theme.SectionStyle.Render("Notifications")
	if m.tray != nil && m.tray.BadgeVisible() {
		header += " " + theme.BadgeStyle.Render(badgeText(m.tray.Unread()))
	}

	var body []string
	if len(items) == 0 {
		body = append(body, theme.MutedStyle.Render("No new alerts."))
	}

	maxRows := max((m.height-8)/2, 1)
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	for i := start; i < len(items) && i < start+maxRows; i++ {
		body = append(body, m.renderItem(items[i], i == m.cursor, width-4))
	}

	footer := theme.HelpStyle.Render("enter: open  C: clear all  esc: close")

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(body, "\n"),
		"",
		footer,
	)
	return theme.DetailPanelStyle.Width(width).Render(content)
}

func (m Model) renderItem(n model.Notification, selected bool, width int) string {
	marker := "  "
	if !n.Read {
		marker = lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("● ")
	}

	title := ui.Truncate(n.Title, width-10)
	stamp := ui.ClockTime(n.CreatedAt.Time)
	line := marker + title + "  " + theme.MutedStyle.Render(stamp)
	msg := "  " + theme.MutedStyle.Render(ui.Truncate(n.Message, width-2))

	if selected {
		return theme.SelectedItemStyle.Render(line + "\n" + msg)
	}
	return theme.ListItemStyle.Render(line + "\n" + msg)
}

// badgeText caps the unread count shown in the badge.
func badgeText(n int) string {
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}
