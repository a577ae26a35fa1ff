package contract

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/deadline"
	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/live"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// Action names a contract operation requested by the user.
type Action string

const (
	ActionSign    Action = "sign"
	ActionFund    Action = "fund"
	ActionRelease Action = "release"
	ActionCancel  Action = "cancel"
)

// ActionMsg asks the parent to run an action on the open contract.
type ActionMsg struct {
	Action     Action
	ContractID string
}

// SendChatMsg asks the parent to post a chat message.
type SendChatMsg struct {
	ContractID string
	Text       string
}

const cancelPrompt = "Are you sure you want to cancel this order? This action cannot be undone."

// Model is the contract detail screen: the agreement, its countdown and
// the chat with the other party.
type Model struct {
	contract      *model.Contract
	selfID        string
	chat          *live.Chat
	timer         *deadline.Timer
	viewport      viewport.Model
	chatView      viewport.Model
	input         textinput.Model
	chatFocus     bool
	confirmCancel bool
	keys          *keys.KeyMap
	width         int
	height        int
}

// New creates an empty contract screen.
func New(k *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = "> "
	ti.CharLimit = 1000

	m := Model{
		viewport: viewport.New(width, 0),
		chatView: viewport.New(width, 0),
		input:    ti,
		keys:     k,
	}
	m.SetSize(width, height)
	return m
}

// Bind shows c for the user selfID. chat and timer receive the polled
// updates for c; timer is nil when the contract has no deadline.
func (m *Model) Bind(c model.Contract, selfID string, chat *live.Chat, timer *deadline.Timer) {
	m.contract = &c
	m.selfID = selfID
	m.chat = chat
	m.timer = timer
	m.chatFocus = false
	m.confirmCancel = false
	m.input.Reset()
	m.input.Blur()
	m.viewport.SetContent(m.renderContract())
	m.viewport.GotoTop()
	m.chatView.SetContent(m.renderChat())
	m.chatView.GotoBottom()
}

// Refresh replaces the contract after an action without touching the chat.
func (m *Model) Refresh(c model.Contract) {
	if m.contract == nil || m.contract.ID != c.ID {
		return
	}
	m.contract = &c
	m.viewport.SetContent(m.renderContract())
}

// Clear unbinds the contract.
func (m *Model) Clear() {
	m.contract = nil
	m.chat = nil
	m.timer = nil
	m.chatFocus = false
	m.confirmCancel = false
	m.input.Blur()
}

// ContractID returns the bound contract id, or "".
func (m Model) ContractID() string {
	if m.contract == nil {
		return ""
	}
	return m.contract.ID
}

// Contract returns the bound contract.
func (m Model) Contract() (model.Contract, bool) {
	if m.contract == nil {
		return model.Contract{}, false
	}
	return *m.contract, true
}

// Typing reports whether the screen wants every key: the chat input has
// focus or a confirmation is pending.
func (m Model) Typing() bool {
	return m.chatFocus || m.confirmCancel
}

// ApplyChat renders a fetched chat history and scrolls to the newest
// message. It reports whether anything was re-rendered.
func (m *Model) ApplyChat(b live.ChatBatch) bool {
	if m.chat == nil || !m.chat.Apply(b) {
		return false
	}
	m.chatView.SetContent(m.renderChat())
	m.chatView.GotoBottom()
	return true
}

// ApplyTick recomputes the countdown.
func (m *Model) ApplyTick(t deadline.Tick) bool {
	if m.timer == nil {
		return false
	}
	return m.timer.Apply(t)
}

func (m Model) isClient() bool {
	return m.contract != nil && m.selfID == m.contract.ClientID
}

func (m Model) escrowOpen() bool {
	if m.contract == nil {
		return false
	}
	s := m.contract.Status
	return s == model.ContractStatusActive || s == model.ContractStatusInEscrow
}

// CanSign reports whether the user has yet to sign.
func (m Model) CanSign() bool {
	return m.contract != nil && !m.contract.AcceptedBy(m.selfID) &&
		m.contract.Status != model.ContractStatusCompleted &&
		m.contract.Status != model.ContractStatusCancelled
}

// CanFund reports whether the client may move the price into escrow.
func (m Model) CanFund() bool {
	return m.isClient() && m.contract.Status == model.ContractStatusActive
}

// CanRelease reports whether the client may pay out the escrow.
func (m Model) CanRelease() bool {
	return m.isClient() && m.contract.Status == model.ContractStatusInEscrow
}

// CanCancel reports whether the client may cancel the order.
func (m Model) CanCancel() bool {
	return m.isClient() && m.escrowOpen()
}

func (m Model) action(a Action) tea.Cmd {
	id := m.contract.ID
	return func() tea.Msg { return ActionMsg{Action: a, ContractID: id} }
}

// Update handles messages for the contract screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.contract == nil {
		if ok && key.Matches(k, m.keys.Back) {
			return m, func() tea.Msg { return ui.BackMsg{} }
		}
		return m, nil
	}

	if m.confirmCancel {
		switch {
		case key.Matches(k, m.keys.Confirm):
			m.confirmCancel = false
			return m, m.action(ActionCancel)
		case key.Matches(k, m.keys.Deny):
			m.confirmCancel = false
		}
		return m, nil
	}

	if m.chatFocus {
		return m.updateChatInput(k)
	}

	switch {
	case key.Matches(k, m.keys.Back):
		return m, func() tea.Msg { return ui.BackMsg{} }

	case key.Matches(k, m.keys.Chat):
		m.chatFocus = true
		focus := m.input.Focus()
		return m, focus

	case key.Matches(k, m.keys.Sign):
		if m.CanSign() {
			return m, m.action(ActionSign)
		}
		return m, nil

	case key.Matches(k, m.keys.Fund):
		if m.CanFund() {
			return m, m.action(ActionFund)
		}
		return m, nil

	case key.Matches(k, m.keys.Release):
		if m.CanRelease() {
			return m, m.action(ActionRelease)
		}
		return m, nil

	case key.Matches(k, m.keys.Cancel):
		if m.CanCancel() {
			m.confirmCancel = true
		}
		return m, nil
	}

	// Delegate to viewport for scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateChatInput(k tea.KeyMsg) (Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.chatFocus = false
		m.input.Blur()
		return m, nil
	case "enter":
		text, ok := live.Outgoing(m.input.Value())
		if !ok {
			return m, nil
		}
		m.input.Reset()
		send := SendChatMsg{ContractID: m.contract.ID, Text: text}
		return m, func() tea.Msg { return send }
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(k)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(k)
	return m, cmd
}

// View renders the contract screen.
func (m Model) View() string {
	if m.contract == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("Loading contract...")
	}

	if m.confirmCancel {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.AlertStyle.Render(cancelPrompt+"\n\ny: cancel order  n: keep it"))
	}

	var top []string
	if m.timer != nil && m.timer.Display().Text != "" {
		d := m.timer.Display()
		top = append(top, theme.CountdownStyle(d.Overdue).Render("⏱ "+d.Text))
	}
	top = append(top, m.viewport.View())

	chatHeader := theme.SectionStyle.Render("Chat")
	input := m.input.View()
	if !m.chatFocus {
		input = theme.HelpStyle.Render("i: write a message")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, top...),
		theme.BorderStyle.Width(max(m.width-2, 10)).Render(
			lipgloss.JoinVertical(lipgloss.Left, chatHeader, m.chatView.View(), input),
		),
		theme.HelpStyle.Render(m.actionHints()),
	)
}

func (m Model) actionHints() string {
	hints := []string{"esc: back"}
	if m.CanSign() {
		hints = append(hints, "s: sign")
	}
	if m.CanFund() {
		hints = append(hints, "f: fund escrow")
	}
	if m.CanRelease() {
		hints = append(hints, "R: release payment")
	}
	if m.CanCancel() {
		hints = append(hints, "x: cancel order")
	}
	return strings.Join(hints, "  ")
}

func signature(ok bool) string {
	if ok {
		return "✅ SIGNED"
	}
	return "⌛ PENDING"
}

// renderContract builds the agreement content for the viewport.
func (m Model) renderContract() string {
	c := m.contract
	var sections []string

	sections = append(sections, theme.TitleStyle.Render(c.Title()))

	badgeLine := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.StatusStyle(c.Status).Render(strings.ToUpper(c.Status)),
		"  ",
		theme.PriceStyle.Render(ui.Rupees(c.Price)),
	)
	sections = append(sections, badgeLine, "")

	if c.Status == model.ContractStatusCompleted {
		sections = append(sections,
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGreen).
				Render("🎉 Project completed. Payment has been released."),
			"")
	}

	meta := func(label, value string) {
		if value == "" {
			return
		}
		sections = append(sections, fmt.Sprintf("%s  %s",
			theme.MutedStyle.Render(label+":"),
			theme.ValueStyle.Render(value)))
	}
	meta("Contract", c.ID)
	meta("Timeline", c.Timeline)
	if !c.Deadline.IsZero() {
		meta("Deadline", c.Deadline.Local().Format("2006-01-02 15:04"))
	}
	meta("Client", signature(c.ClientAccepted))
	meta("Freelancer", signature(c.FreelancerAccepted))

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 1)))
	sections = append(sections, "", separator, "")

	text := c.Text
	if text == "" {
		text = lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true).Render("No contract text")
	}
	sections = append(sections, lipgloss.NewStyle().Width(max(m.width-2, 20)).Render(text))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChat builds the chat content. Own messages are right-aligned.
func (m Model) renderChat() string {
	if m.chat == nil || m.chat.Rendered() == 0 {
		return theme.MutedStyle.Render("No messages yet. Say hello!")
	}

	width := max(m.width-4, 20)
	bubbleWidth := max(width*2/3, 10)

	lines := make([]string, 0, m.chat.Rendered())
	for _, l := range m.chat.Lines() {
		stamp := theme.MutedStyle.Render(ui.ClockTime(l.At))
		if l.Mine {
			bubble := theme.ChatMineStyle.MaxWidth(bubbleWidth).Render(l.Text)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble+" "+stamp))
		} else {
			bubble := theme.ChatTheirsStyle.MaxWidth(bubbleWidth).Render(l.Text)
			lines = append(lines, bubble+" "+stamp)
		}
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the screen dimensions. The agreement takes the upper
// part and the chat the rest.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	contractHeight := max(height/2-2, 3)
	chatHeight := max(height-contractHeight-6, 3)

	m.viewport.Width = width
	m.viewport.Height = contractHeight
	m.chatView.Width = max(width-4, 10)
	m.chatView.Height = chatHeight
	m.input.Width = max(width-8, 10)

	if m.contract != nil {
		m.viewport.SetContent(m.renderContract())
		m.chatView.SetContent(m.renderChat())
		m.chatView.GotoBottom()
	}
}
