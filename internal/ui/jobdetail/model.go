package jobdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/cards"
)

// HireMsg asks the parent to create a contract from a proposal.
type HireMsg struct {
	Job      model.Job
	Proposal model.Proposal
}

// ProposalSubmitMsg is dispatched when a freelancer applies. FreelancerID
// is filled in by the receiver.
type ProposalSubmitMsg struct {
	Draft model.ProposalDraft
}

// Data is everything loaded for one job.
type Data struct {
	Job       model.Job
	Proposals []model.Proposal
	Curated   []model.CuratedFreelancer
}

type formBindings struct {
	price    string
	timeline string
	message  string
}

// Model is the job detail screen. Clients review proposals and curated
// freelancers; freelancers apply.
type Model struct {
	data       *Data
	role       model.Role
	minRate    float64
	proposals  list.Model
	curated    list.Model
	onCurated  bool
	confirming *model.Proposal
	form       *huh.Form
	fb         *formBindings
	keys       *keys.KeyMap
	width      int
	height     int
}

// New creates an empty job detail screen.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		proposals: cards.NewList("Proposals", width, listHeight(height)),
		curated:   cards.NewList("Recommended Freelancers", width, listHeight(height)),
		fb:        &formBindings{},
		keys:      k,
		width:     width,
		height:    height,
	}
}

func listHeight(h int) int {
	return max(h/2, 6)
}

// Clear drops the loaded job.
func (m *Model) Clear() {
	m.data = nil
	m.confirming = nil
	m.form = nil
}

// SetData shows a loaded job for a viewer with the given role. minRate is
// the freelancer's own minimum rate, shown as a hint.
func (m *Model) SetData(d Data, role model.Role, minRate float64) tea.Cmd {
	m.data = &d
	m.role = role
	m.minRate = minRate
	m.confirming = nil
	m.onCurated = false

	m.proposals.SetItems(cards.Proposals(d.Proposals, false))
	m.proposals.ResetSelected()
	m.curated.SetItems(cards.Freelancers(d.Curated))
	m.curated.ResetSelected()

	if role != model.RoleFreelancer {
		m.form = nil
		return nil
	}
	m.fb = &formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// JobID returns the id of the job shown, or "".
func (m Model) JobID() string {
	if m.data == nil {
		return ""
	}
	return m.data.Job.ID
}

// Typing reports whether the proposal form has focus or a hire is
// waiting for confirmation.
func (m Model) Typing() bool {
	return m.form != nil || m.confirming != nil
}

// Update handles messages for the job detail screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.data == nil {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
			return m, func() tea.Msg { return ui.BackMsg{} }
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming != nil {
		switch {
		case key.Matches(k, m.keys.Confirm):
			hire := HireMsg{Job: m.data.Job, Proposal: *m.confirming}
			m.confirming = nil
			return m, func() tea.Msg { return hire }
		case key.Matches(k, m.keys.Deny):
			m.confirming = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Back):
		return m, func() tea.Msg { return ui.BackMsg{} }

	case key.Matches(k, m.keys.Tab):
		m.onCurated = !m.onCurated
		return m, nil

	case key.Matches(k, m.keys.Select):
		if m.onCurated {
			return m, nil
		}
		if it, ok := m.proposals.SelectedItem().(cards.ProposalItem); ok {
			p := it.Proposal
			m.confirming = &p
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.onCurated {
		m.curated, cmd = m.curated.Update(msg)
	} else {
		m.proposals, cmd = m.proposals.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return m, func() tea.Msg { return ui.BackMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submit()
		m.fb = &formBindings{}
		m.form = m.buildForm()
		rebuild := m.form.Init()
		return m, tea.Batch(submit, rebuild)
	case huh.StateAborted:
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	draft := model.ProposalDraft{
		JobID:    m.data.Job.ID,
		Price:    ui.ParseAmount(m.fb.price, m.data.Job.Budget),
		Timeline: strings.TrimSpace(m.fb.timeline),
		Message:  strings.TrimSpace(m.fb.message),
	}
	return func() tea.Msg { return ProposalSubmitMsg{Draft: draft} }
}

// View renders the job detail screen.
func (m Model) View() string {
	if m.data == nil {
		return theme.MutedStyle.Render("Loading job...")
	}

	sections := []string{m.renderJob()}

	switch {
	case m.form != nil:
		hint := "Your minimum rate: " + ui.Rupees(m.minRate)
		sections = append(sections,
			theme.SectionStyle.Render("Submit a Proposal"),
			theme.MutedStyle.Render(hint),
			m.form.View(),
		)
	case m.confirming != nil:
		sections = append(sections, theme.AlertStyle.Render(
			fmt.Sprintf("Hire %s for %s?\n\ny: confirm  n: keep looking",
				m.confirming.FreelancerName, ui.Rupees(m.confirming.Price)),
		))
	case m.onCurated:
		sections = append(sections, m.curated.View())
	default:
		if len(m.data.Proposals) == 0 {
			sections = append(sections, theme.MutedStyle.Render("No proposals yet."))
		} else {
			sections = append(sections, m.proposals.View())
		}
		sections = append(sections, theme.HelpStyle.Render("enter: hire  tab: recommended freelancers"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderJob() string {
	j := m.data.Job
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(j.Title))
	b.WriteString("\n")
	b.WriteString(theme.StatusStyle(j.Status).Render(strings.ToUpper(j.Status)))
	b.WriteString("  ")
	b.WriteString(theme.PriceStyle.Render(ui.Rupees(j.Budget)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(theme.MutedStyle.Render(label + ": "))
		b.WriteString(theme.ValueStyle.Render(value))
		b.WriteString("\n")
	}
	field("Skills", strings.Join(j.RequiredSkills, ", "))
	field("Timeline", j.Timeline)
	field("Region", j.Region)
	field("Languages", strings.Join(j.Languages, ", "))
	if !j.CreatedAt.IsZero() {
		field("Posted", j.CreatedAt.Local().Format("2 Jan 2006"))
	}

	if j.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(j.Description))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.proposals.SetSize(width, listHeight(height))
	m.curated.SetSize(width, listHeight(height))
	if m.form != nil {
		m.form = m.form.WithWidth(min(max(width-8, 40), 72))
	}
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your price (₹)").
				Placeholder(fmt.Sprint(m.data.Job.Budget)).
				Value(&m.fb.price).
				Validate(ui.ValidateAmount),
			huh.NewInput().
				Title("Timeline").
				Placeholder("e.g. 2 weeks").
				Value(&m.fb.timeline).
				Validate(ui.ValidateRequired("Timeline")),
			huh.NewText().
				Title("Cover letter").
				Lines(3).
				Value(&m.fb.message).
				Validate(ui.ValidateRequired("Message")),
		),
	).WithWidth(min(max(m.width-8, 40), 72)).WithShowHelp(false)
}
