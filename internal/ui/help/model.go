package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
)

// section is one titled block of shortcuts.
type section struct {
	title    string
	bindings []key.Binding
}

// Model is the help overlay. The shortcuts listed depend on the signed-in
// role: only clients post jobs and move escrow money, only freelancers
// search the job board.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	role   model.Role
	width  int
	height int
}

func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{keys: k, help: h, width: width, height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetRole selects the shortcuts for role. An empty role shows the
// signed-out set.
func (m *Model) SetRole(role model.Role) {
	m.role = role
}

func (m Model) sections() []section {
	k := m.keys
	global := section{"Global", []key.Binding{k.Command, k.Help, k.DarkMode, k.Quit}}
	if m.role == "" {
		return []section{global}
	}

	screens := []key.Binding{k.Dashboard, k.Contracts, k.Profile}
	contract := []key.Binding{k.Sign, k.Chat}
	dashboard := []key.Binding{k.Up, k.Down, k.Tab, k.Select, k.Back}
	switch m.role {
	case model.RoleClient:
		screens = append(screens, k.PostJob)
		contract = append(contract, k.Fund, k.Release, k.Cancel)
	case model.RoleFreelancer:
		dashboard = append(dashboard, k.Search)
	}

	return []section{
		{"Browsing", dashboard},
		{"Screens", screens},
		{"Contract", contract},
		{"Notifications", []key.Binding{k.Notifications, k.ClearAll, k.Refresh}},
		global,
	}
}

// View renders the help overlay.
func (m Model) View() string {
	m.help.Width = m.width - 4
	m.help.ShowAll = true

	blocks := []string{theme.TitleStyle.Render("WorkLance shortcuts")}
	for _, s := range m.sections() {
		blocks = append(blocks,
			theme.SectionStyle.Render(s.title),
			m.help.FullHelpView([][]key.Binding{s.bindings}),
			"",
		)
	}

	return theme.DetailPanelStyle.
		Width(min(m.width-4, 96)).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
