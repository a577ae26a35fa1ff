package profile

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// SubmitMsg is dispatched when the profile form is saved.
type SubmitMsg struct {
	Update model.ProfileUpdate
}

// formBindings holds form field values on the heap so huh's Value()
// pointers survive model copies.
type formBindings struct {
	name       string
	languages  string
	region     string
	companyBio string
	skills     string
	minRate    string
	github     string
	linkedin   string
	portfolio  string
}

// Model is the profile editor.
type Model struct {
	profile *model.Profile
	form    *huh.Form
	fb      *formBindings
	width   int
	height  int
}

// New creates an empty profile screen. Call SetProfile once the profile
// has loaded.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetProfile prefills the form from p.
func (m *Model) SetProfile(p model.Profile) tea.Cmd {
	m.profile = &p
	m.fb = &formBindings{
		name:       p.Name,
		languages:  strings.Join(p.SpokenLanguages(), ", "),
		region:     p.Region,
		companyBio: p.CompanyBio,
		skills:     strings.Join(p.Skills, ", "),
		github:     p.GitHub,
		linkedin:   p.LinkedIn,
		portfolio:  p.Portfolio,
	}
	if p.MinRate > 0 {
		m.fb.minRate = fmt.Sprint(p.MinRate)
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Clear drops the loaded profile.
func (m *Model) Clear() {
	m.profile = nil
	m.form = nil
}

// Loaded reports whether a profile is being edited.
func (m Model) Loaded() bool {
	return m.profile != nil
}

// Update handles messages for the profile editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return m, func() tea.Msg { return ui.BackMsg{} }
	}
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submit()
		rebuild := m.rebuild()
		return m, tea.Batch(submit, rebuild)
	case huh.StateAborted:
		rebuild := m.rebuild()
		return m, rebuild
	}

	return m, cmd
}

func (m *Model) rebuild() tea.Cmd {
	m.form = m.buildForm()
	return m.form.Init()
}

func (m Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.fb.name)
	region := strings.TrimSpace(m.fb.region)
	update := model.ProfileUpdate{
		Name:      &name,
		Region:    &region,
		Languages: ui.SplitList(m.fb.languages),
	}

	if m.profile != nil && m.profile.Role == model.RoleClient {
		bio := strings.TrimSpace(m.fb.companyBio)
		update.CompanyBio = &bio
	} else {
		rate := ui.ParseAmount(m.fb.minRate, 0)
		github := strings.TrimSpace(m.fb.github)
		linkedin := strings.TrimSpace(m.fb.linkedin)
		portfolio := strings.TrimSpace(m.fb.portfolio)
		update.Skills = ui.SplitList(m.fb.skills)
		update.MinRate = &rate
		update.GitHub = &github
		update.LinkedIn = &linkedin
		update.Portfolio = &portfolio
	}

	return func() tea.Msg {
		return SubmitMsg{Update: update}
	}
}

// View renders the profile editor.
func (m Model) View() string {
	if m.profile == nil || m.form == nil {
		return theme.MutedStyle.Render("Loading profile...")
	}

	p := m.profile
	summary := fmt.Sprintf("%s  %s", theme.ValueStyle.Render(p.Email), theme.MutedStyle.Render(string(p.Role)))
	if p.Role == model.RoleFreelancer {
		summary += "  " + theme.MatchStyle.Render(fmt.Sprintf("Trust %.0f", p.TrustScore))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("My Profile"),
		summary,
		"",
		m.form.View(),
		theme.HelpStyle.Render("enter: next field  esc: back"),
	)
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}

func (m *Model) buildForm() *huh.Form {
	common := []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&m.fb.name).
			Validate(ui.ValidateRequired("Name")),
		huh.NewInput().
			Title("Languages").
			Placeholder("English, Hindi").
			Value(&m.fb.languages),
		huh.NewInput().
			Title("Region").
			Value(&m.fb.region),
	}

	var extra []huh.Field
	if m.profile != nil && m.profile.Role == model.RoleClient {
		extra = []huh.Field{
			huh.NewText().
				Title("Company bio").
				Value(&m.fb.companyBio),
		}
	} else {
		extra = []huh.Field{
			huh.NewInput().
				Title("Skills").
				Placeholder("comma separated").
				Value(&m.fb.skills),
			huh.NewInput().
				Title("Minimum rate (₹)").
				Value(&m.fb.minRate).
				Validate(ui.ValidateAmount),
			huh.NewInput().Title("GitHub").Value(&m.fb.github),
			huh.NewInput().Title("LinkedIn").Value(&m.fb.linkedin),
			huh.NewInput().Title("Portfolio").Value(&m.fb.portfolio),
		}
	}

	return huh.NewForm(
		huh.NewGroup(common...),
		huh.NewGroup(extra...),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) formWidth() int {
	return min(max(m.width-8, 40), 72)
}
