package auth

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// LoginSubmitMsg is dispatched when the login form is submitted.
type LoginSubmitMsg struct {
	Email    string
	Password string
}

// RegisterSubmitMsg is dispatched when the registration form is submitted.
type RegisterSubmitMsg struct {
	Registration model.Registration
}

// Mode selects which form is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	email    string
	password string
	role     string
	skills   string
	minRate  string
	region   string
}

// Model is the authentication screen.
type Model struct {
	mode   Mode
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates the auth screen showing the login form.
func New(width, height int) Model {
	m := Model{
		fb:     &formBindings{role: string(model.RoleFreelancer)},
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the current form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Mode returns the form being shown.
func (m Model) Mode() Mode {
	return m.mode
}

// Reset shows the given form with the password cleared.
func (m *Model) Reset(mode Mode) tea.Cmd {
	m.mode = mode
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the auth screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		next := ModeRegister
		if m.mode == ModeRegister {
			next = ModeLogin
		}
		cmd := m.Reset(next)
		return m, cmd
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submit()
		reset := m.Reset(m.mode)
		return m, tea.Batch(submit, reset)
	case huh.StateAborted:
		reset := m.Reset(m.mode)
		return m, reset
	}

	return m, cmd
}

func (m Model) submit() tea.Cmd {
	email := strings.TrimSpace(m.fb.email)
	password := m.fb.password

	if m.mode == ModeLogin {
		return func() tea.Msg {
			return LoginSubmitMsg{Email: email, Password: password}
		}
	}

	reg := model.Registration{
		Name:     strings.TrimSpace(m.fb.name),
		Email:    email,
		Password: password,
		Role:     model.Role(m.fb.role),
	}
	if reg.Role == model.RoleFreelancer {
		reg.Skills = ui.SplitList(m.fb.skills)
		reg.MinRate = ui.ParseAmount(m.fb.minRate, 500)
		reg.Region = strings.TrimSpace(m.fb.region)
		if reg.Region == "" {
			reg.Region = "India"
		}
	}
	return func() tea.Msg {
		return RegisterSubmitMsg{Registration: reg}
	}
}

// View renders the auth screen.
func (m Model) View() string {
	title := "Sign in to WorkLance"
	hint := "esc: create an account instead"
	if m.mode == ModeRegister {
		title = "Create your WorkLance account"
		hint = "esc: back to sign in"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render(title),
		m.form.View(),
		theme.HelpStyle.Render(hint),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.DetailPanelStyle.Width(m.formWidth()+4).Render(content))
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
	if m.mode == ModeLogin {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&m.fb.email).
					Validate(ui.ValidateRequired("Email")),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&m.fb.password).
					Validate(ui.ValidateRequired("Password")),
			),
		).WithWidth(m.formWidth()).WithShowHelp(false)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&m.fb.name).
				Validate(ui.ValidateRequired("Name")),
			huh.NewInput().
				Title("Email").
				Value(&m.fb.email).
				Validate(ui.ValidateRequired("Email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(ui.ValidateRequired("Password")),
			huh.NewSelect[string]().
				Title("I want to").
				Options(
					huh.NewOption("Work as a freelancer", string(model.RoleFreelancer)),
					huh.NewOption("Hire talent", string(model.RoleClient)),
				).
				Value(&m.fb.role),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Skills").
				Placeholder("comma separated, e.g. Go, React").
				Value(&m.fb.skills),
			huh.NewInput().
				Title("Minimum rate (₹)").
				Placeholder("500").
				Value(&m.fb.minRate).
				Validate(ui.ValidateAmount),
			huh.NewInput().
				Title("Region").
				Placeholder("India").
				Value(&m.fb.region),
		).WithHideFunc(func() bool {
			return m.fb.role != string(model.RoleFreelancer)
		}),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) formWidth() int {
	return min(max(m.width-12, 40), 64)
}
