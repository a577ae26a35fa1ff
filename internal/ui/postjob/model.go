package postjob

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// SubmitMsg is dispatched when the job is published. ClientID is filled
// in by the receiver.
type SubmitMsg struct {
	Draft model.JobDraft
}

// EstimateRequestMsg asks for a budget suggestion for the current draft.
type EstimateRequestMsg struct {
	Request model.EstimateRequest
}

// EstimateMissingMsg is sent when an estimate is requested before the
// title and description are filled in.
type EstimateMissingMsg struct{}

const defaultTimeline = "Not set"

type formBindings struct {
	title       string
	description string
	skills      string
	budget      string
	region      string
	languages   string
}

// Model is the post-job screen.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	estimate *model.CostEstimate
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates the post-job screen with an empty draft.
func New(k *keys.KeyMap, width, height int) Model {
	m := Model{keys: k, width: width, height: height}
	m.Reset()
	return m
}

// Reset clears the draft and any estimate.
func (m *Model) Reset() tea.Cmd {
	m.fb = &formBindings{region: "India", languages: "English"}
	m.estimate = nil
	m.form = m.buildForm()
	return m.form.Init()
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetEstimate shows a budget suggestion. An empty budget field is
// published with the suggested amount.
func (m *Model) SetEstimate(e model.CostEstimate) {
	m.estimate = &e
}

// EstimateText renders the suggestion line.
func EstimateText(e model.CostEstimate) string {
	return fmt.Sprintf("AI suggests %s (%.0fh work)", ui.Rupees(e.SuggestedBudget), e.EstimatedHours)
}

// Update handles messages for the post-job screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Estimate):
			return m, m.requestEstimate()
		case k.String() == "esc":
			return m, func() tea.Msg { return ui.BackMsg{} }
		}
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submit()
		reset := m.Reset()
		return m, tea.Batch(submit, reset)
	case huh.StateAborted:
		reset := m.Reset()
		return m, reset
	}

	return m, cmd
}

func (m Model) requestEstimate() tea.Cmd {
	req := model.EstimateRequest{
		Title:       strings.TrimSpace(m.fb.title),
		Description: strings.TrimSpace(m.fb.description),
		Skills:      ui.SplitList(m.fb.skills),
	}
	if req.Title == "" || req.Description == "" {
		return func() tea.Msg { return EstimateMissingMsg{} }
	}
	return func() tea.Msg { return EstimateRequestMsg{Request: req} }
}

func (m Model) submit() tea.Cmd {
	var suggested float64
	if m.estimate != nil {
		suggested = m.estimate.SuggestedBudget
	}

	languages := ui.SplitList(m.fb.languages)
	if len(languages) == 0 {
		languages = []string{"English"}
	}
	region := strings.TrimSpace(m.fb.region)
	if region == "" {
		region = "India"
	}

	draft := model.JobDraft{
		Title:          strings.TrimSpace(m.fb.title),
		Description:    strings.TrimSpace(m.fb.description),
		RequiredSkills: ui.SplitList(m.fb.skills),
		Budget:         ui.ParseAmount(m.fb.budget, suggested),
		Timeline:       defaultTimeline,
		Languages:      languages,
		Region:         region,
	}
	return func() tea.Msg { return SubmitMsg{Draft: draft} }
}

// View renders the post-job screen.
func (m Model) View() string {
	lines := []string{
		theme.TitleStyle.Render("Post a Job"),
		m.form.View(),
	}
	if m.estimate != nil {
		lines = append(lines, theme.MatchStyle.Render(EstimateText(*m.estimate)))
	}
	lines = append(lines, theme.HelpStyle.Render("ctrl+e: estimate cost  esc: back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(m.formWidth())
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.fb.title).
				Validate(ui.ValidateRequired("Title")),
			huh.NewText().
				Title("Description").
				Lines(4).
				Value(&m.fb.description).
				Validate(ui.ValidateRequired("Description")),
			huh.NewInput().
				Title("Required skills").
				Placeholder("comma separated").
				Value(&m.fb.skills),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Budget (₹)").
				Placeholder("leave empty to use the estimate").
				Value(&m.fb.budget).
				Validate(ui.ValidateAmount),
			huh.NewInput().
				Title("Region").
				Value(&m.fb.region),
			huh.NewInput().
				Title("Languages").
				Value(&m.fb.languages),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)
}

func (m Model) formWidth() int {
	return min(max(m.width-8, 40), 72)
}
