package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/cards"
)

// SearchMsg asks the parent to search open jobs.
type SearchMsg struct {
	Query string
}

// Data is everything the dashboard shows for one user.
type Data struct {
	Jobs      []model.Job
	Contracts []model.Contract
	Proposals []model.Proposal
}

// section is one tab of the dashboard.
type section int

const (
	sectionJobs section = iota
	sectionContracts
	sectionProposals
)

// Model is the dashboard screen. Clients see their open jobs and active
// contracts; freelancers see matched jobs, active contracts and their
// proposals.
type Model struct {
	role        model.Role
	data        Data
	searchQuery string
	sections    []section
	current     int
	list        list.Model
	searchMode  bool
	searchInput textinput.Model
	keys        *keys.KeyMap
	width       int
	height      int
}

// New creates a new dashboard model.
func New(k *keys.KeyMap, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search jobs by title or skill..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        cards.NewList("", width, height-4),
		searchInput: si,
		keys:        k,
		width:       width,
		height:      height,
	}
}

// Reset prepares the dashboard for a user, clearing previous data.
func (m *Model) Reset(role model.Role) {
	m.role = role
	m.data = Data{}
	m.searchQuery = ""
	m.searchMode = false
	m.searchInput.Reset()
	m.current = 0
	if role == model.RoleClient {
		m.sections = []section{sectionContracts, sectionJobs}
	} else {
		m.sections = []section{sectionJobs, sectionContracts, sectionProposals}
	}
	m.refreshList()
}

// SetData replaces the dashboard contents.
func (m *Model) SetData(d Data) {
	m.data = d
	m.searchQuery = ""
	m.refreshList()
}

// SetSearchResults replaces the job list with search results.
func (m *Model) SetSearchResults(query string, jobs []model.Job) {
	m.data.Jobs = jobs
	m.searchQuery = query
	for i, s := range m.sections {
		if s == sectionJobs {
			m.current = i
		}
	}
	m.refreshList()
}

// Typing reports whether the search input has focus.
func (m Model) Typing() bool {
	return m.searchMode
}

// ActiveContracts returns the contracts that are not completed.
func (m Model) ActiveContracts() []model.Contract {
	var out []model.Contract
	for _, c := range m.data.Contracts {
		if c.IsOngoing() {
			out = append(out, c)
		}
	}
	return out
}

// VisibleJobs returns the jobs listed on the dashboard. Clients only see
// their open jobs.
func (m Model) VisibleJobs() []model.Job {
	if m.role != model.RoleClient {
		return m.data.Jobs
	}
	var out []model.Job
	for _, j := range m.data.Jobs {
		if j.Status == model.JobStatusOpen {
			out = append(out, j)
		}
	}
	return out
}

func (m *Model) refreshList() {
	if len(m.sections) == 0 {
		return
	}

	switch m.sections[m.current] {
	case sectionJobs:
		if m.role == model.RoleClient {
			m.list.Title = "Open Jobs"
		} else if m.searchQuery != "" {
			m.list.Title = fmt.Sprintf("Results for %q", m.searchQuery)
		} else {
			m.list.Title = "Recommended Jobs"
		}
		m.list.SetItems(cards.Jobs(m.VisibleJobs()))
	case sectionContracts:
		m.list.Title = "Active Projects"
		m.list.SetItems(cards.Contracts(m.ActiveContracts()))
	case sectionProposals:
		m.list.Title = "My Applications"
		m.list.SetItems(cards.Proposals(m.data.Proposals, true))
	}
	m.list.ResetSelected()
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Tab):
			if len(m.sections) > 0 {
				m.current = (m.current + 1) % len(m.sections)
				m.refreshList()
			}
			return m, nil

		case key.Matches(msg, m.keys.Search):
			if m.role == model.RoleFreelancer {
				m.searchMode = true
				focus := m.searchInput.Focus()
				return m, focus
			}

		case key.Matches(msg, m.keys.Select):
			return m, m.openSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		query := strings.TrimSpace(m.searchInput.Value())
		return m, func() tea.Msg { return SearchMsg{Query: query} }
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) openSelected() tea.Cmd {
	switch it := m.list.SelectedItem().(type) {
	case cards.JobItem:
		id := it.Job.ID
		return func() tea.Msg { return ui.OpenJobMsg{JobID: id} }
	case cards.ContractItem:
		id := it.Contract.ID
		return func() tea.Msg { return ui.OpenContractMsg{ContractID: id} }
	case cards.ProposalItem:
		id := it.Proposal.JobID
		return func() tea.Msg { return ui.OpenJobMsg{JobID: id} }
	}
	return nil
}

// View renders the dashboard.
func (m Model) View() string {
	var header string
	if m.role == model.RoleClient {
		header = lipgloss.JoinHorizontal(lipgloss.Top,
			stat("Active contracts", len(m.ActiveContracts())),
			"   ",
			stat("Open jobs", len(m.VisibleJobs())),
		)
	} else if m.searchMode {
		header = m.searchInput.View()
	} else {
		header = theme.HelpStyle.Render("/ search jobs")
	}

	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		label := sectionLabel(s)
		if i == m.current {
			tabs[i] = theme.NavActiveStyle.Render(label)
		} else {
			tabs[i] = theme.NavItemStyle.Render(label)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		m.list.View(),
	)
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-4, 1))
	m.searchInput.Width = width - 4
}

func stat(label string, n int) string {
	return theme.MutedStyle.Render(label+": ") + theme.PriceStyle.Render(fmt.Sprint(n))
}

func sectionLabel(s section) string {
	switch s {
	case sectionJobs:
		return "Jobs"
	case sectionContracts:
		return "Contracts"
	case sectionProposals:
		return "Proposals"
	default:
		return ""
	}
}
