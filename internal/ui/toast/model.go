package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Duration is how long a toast stays visible.
const Duration = 4 * time.Second

// expiredMsg hides the toast it was scheduled for.
type expiredMsg struct {
	seq int
}

// Model holds the single visible toast. A newer toast replaces an older one.
type Model struct {
	text    string
	isError bool
	seq     int
}

func New() Model {
	return Model{}
}

// Show displays text and schedules it to disappear after Duration.
func (m *Model) Show(text string, isError bool) tea.Cmd {
	m.seq++
	m.text = text
	m.isError = isError
	seq := m.seq
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return expiredMsg{seq: seq}
	})
}

// Success shows a confirmation toast.
func (m *Model) Success(text string) tea.Cmd {
	return m.Show(text, false)
}

// Error shows a failure toast.
func (m *Model) Error(text string) tea.Cmd {
	return m.Show(text, true)
}

// Update hides the toast when its timer fires.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(expiredMsg); ok && msg.seq == m.seq {
		m.text = ""
		m.isError = false
	}
	return m, nil
}

// Text returns the visible message, or "" when hidden.
func (m Model) Text() string {
	return m.text
}

func (m Model) IsError() bool {
	return m.isError
}
