// Package app is the root Bubble Tea model: it routes between screens,
// owns the poller and turns API results into screen updates and toasts.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/api"
	"github.com/nhle/worklance/internal/deadline"
	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/live"
	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/session"
	appsync "github.com/nhle/worklance/internal/sync"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/auth"
	"github.com/nhle/worklance/internal/ui/command"
	"github.com/nhle/worklance/internal/ui/contract"
	"github.com/nhle/worklance/internal/ui/contracts"
	"github.com/nhle/worklance/internal/ui/dashboard"
	helpview "github.com/nhle/worklance/internal/ui/help"
	"github.com/nhle/worklance/internal/ui/jobdetail"
	"github.com/nhle/worklance/internal/ui/postjob"
	"github.com/nhle/worklance/internal/ui/profile"
	"github.com/nhle/worklance/internal/ui/toast"
	"github.com/nhle/worklance/internal/ui/tray"
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the session and the background polls.
type Model struct {
	cfg    *model.AppConfig
	client *api.Client
	state  *session.State
	log    logging.Logger
	poller *appsync.Poller
	keys   *keys.KeyMap
	now    func() time.Time

	layout  ui.Layout
	ready   bool
	screen  Screen
	overlay Overlay
	alert   string
	loading bool
	spinner spinner.Model
	toast   toast.Model
	tray    *live.Tray

	// pendingJob is the job the detail screen is waiting for.
	pendingJob string

	authView      auth.Model
	dashboardView dashboard.Model
	profileView   profile.Model
	postJobView   postjob.Model
	jobView       jobdetail.Model
	contractsView contracts.Model
	contractView  contract.Model
	trayView      tray.Model
	helpView      helpview.Model
	commandView   command.Model
}

// New creates the root model. state must already be restored.
func New(cfg *model.AppConfig, client *api.Client, state *session.State, log logging.Logger) Model {
	k := keys.DefaultKeyMap()
	theme.SetDarkMode(state.DarkMode())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorOnBrand)

	return Model{
		cfg:           cfg,
		client:        client,
		state:         state,
		log:           log.With("component", "app"),
		poller:        appsync.New(log),
		keys:          k,
		now:           time.Now,
		screen:        ScreenAuth,
		spinner:       sp,
		toast:         toast.New(),
		authView:      auth.New(80, 24),
		dashboardView: dashboard.New(k, 80, 24),
		profileView:   profile.New(80, 24),
		postJobView:   postjob.New(k, 80, 24),
		jobView:       jobdetail.New(k, 80, 24),
		contractsView: contracts.New(k, 80, 24),
		contractView:  contract.New(k, 80, 24),
		trayView:      tray.New(k, 80, 24),
		helpView:      helpview.New(k, 80, 24),
		commandView:   command.New(80, 24),
	}
}

// Init probes the backend, routes to the first screen and starts
// listening for poll results.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.probe(),
		func() tea.Msg { return startupMsg{} },
		m.poller.WaitForResult(),
	)
}

// Close stops every background poll.
func (m Model) Close() {
	m.poller.Close()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(completion); ok {
		m.loading = false
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.ready = true
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startupMsg:
		if m.state.LoggedIn() {
			m.startSession()
			next := m.gotoDashboard()
			return m, next
		}
		next := m.gotoAuth()
		return m, next

	case probeResultMsg:
		if msg.err != nil {
			m.log.Error(context.Background(), "backend probe failed", "error", msg.err)
			m.alert = fmt.Sprintf("Cannot reach the WorkLance backend at %s.\nCheck that the server is running.", m.client.BaseURL())
			next := m.toast.Error("Backend unreachable")
			return m, next
		}
		return m, nil

	case appsync.ResultMsg:
		return m.applyPollResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if cmd, handled := m.handleResult(msg); handled {
		return m, cmd
	}
	if cmd, handled := m.handleRequest(msg); handled {
		return m, cmd
	}

	// toast timers
	var toastCmd tea.Cmd
	m.toast, toastCmd = m.toast.Update(msg)

	mdl, cmd := m.updateActiveView(msg)
	return mdl, tea.Batch(toastCmd, cmd)
}

// applyPollResult routes a poll value to its live view. Results from a
// stopped or replaced handle are dropped.
func (m Model) applyPollResult(msg appsync.ResultMsg) (tea.Model, tea.Cmd) {
	wait := m.poller.WaitForResult()
	if !m.poller.IsCurrent(msg.Key, msg.Generation) {
		m.log.Debug(context.Background(), "dropping stale poll result", "key", msg.Key, "generation", msg.Generation)
		return m, wait
	}

	switch v := msg.Value.(type) {
	case live.ChatBatch:
		m.contractView.ApplyChat(v)
	case deadline.Tick:
		m.contractView.ApplyTick(v)
	case live.NotificationBatch:
		if m.tray != nil {
			m.tray.Apply(v)
		}
	}
	return m, wait
}

// handleRequest handles navigation and action requests emitted by screens.
func (m *Model) handleRequest(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case auth.LoginSubmitMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.login(msg.Email, msg.Password)), true

	case auth.RegisterSubmitMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.register(msg.Registration)), true

	case ui.BackMsg:
		return m.gotoDashboard(), true

	case ui.OpenJobMsg:
		return m.openJob(msg.JobID), true

	case ui.OpenContractMsg:
		return m.openContract(msg.ContractID), true

	case dashboard.SearchMsg:
		if msg.Query == "" {
			return m.gotoDashboard(), true
		}
		spin := m.startLoading()
		return tea.Batch(spin, m.search(msg.Query)), true

	case profile.SubmitMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.saveProfile(msg.Update)), true

	case postjob.EstimateRequestMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.estimate(msg.Request)), true

	case postjob.EstimateMissingMsg:
		return m.toast.Error("Enter title & description first"), true

	case postjob.SubmitMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.postJob(msg.Draft)), true

	case jobdetail.ProposalSubmitMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.submitProposal(msg.Draft)), true

	case jobdetail.HireMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.hire(msg)), true

	case contract.ActionMsg:
		spin := m.startLoading()
		return tea.Batch(spin, m.contractAction(msg.Action, msg.ContractID)), true

	case contract.SendChatMsg:
		return m.sendChat(msg.ContractID, msg.Text), true

	case tray.OpenMsg:
		m.overlay = OverlayNone
		n := msg.Notification
		if m.tray != nil {
			m.tray.MarkRead(n.ID)
		}
		return tea.Batch(m.markNotificationRead(n.ID), m.navigate(live.Target(n))), true

	case tray.ClearMsg:
		return m.clearNotifications(), true

	case tray.CloseMsg:
		m.overlay = OverlayNone
		return nil, true

	case command.CommandMsg:
		m.overlay = OverlayNone
		return m.executeCommand(string(msg)), true

	case command.CancelMsg:
		m.overlay = OverlayNone
		return nil, true
	}
	return nil, false
}

// handleResult applies the outcome of an API call.
func (m *Model) handleResult(msg tea.Msg) (tea.Cmd, bool) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			m.log.Warn(ctx, "login failed", "error", msg.err)
			return m.toast.Error(api.UserMessage(msg.err, "Login failed")), true
		}
		return m.signIn(*msg.session, "Logged in successfully!"), true

	case registerResultMsg:
		if msg.err != nil {
			m.log.Warn(ctx, "registration failed", "error", msg.err)
			return m.toast.Error(api.UserMessage(msg.err, "Registration failed")), true
		}
		return m.signIn(msg.session, "Welcome to WorkLance!"), true

	case dashboardLoadedMsg:
		if m.screen != ScreenDashboard || msg.userID != m.state.UserID() {
			return nil, true
		}
		if msg.err != nil {
			return m.fail("load dashboard", msg.err, "Could not load dashboard"), true
		}
		m.dashboardView.SetData(msg.data)
		return nil, true

	case searchResultMsg:
		if m.screen != ScreenDashboard {
			return nil, true
		}
		if msg.err != nil {
			return m.fail("search", msg.err, "Search failed"), true
		}
		m.dashboardView.SetSearchResults(msg.query, msg.jobs)
		return m.toast.Success(fmt.Sprintf("Found %d jobs", len(msg.jobs))), true

	case profileLoadedMsg:
		if m.screen != ScreenProfile {
			return nil, true
		}
		if msg.err != nil {
			failed := m.fail("load profile", msg.err, "Could not load profile")
			return tea.Batch(failed, m.gotoDashboard()), true
		}
		return m.profileView.SetProfile(*msg.profile), true

	case profileSavedMsg:
		if msg.err != nil {
			return m.fail("update profile", msg.err, "Update failed"), true
		}
		if err := m.state.UpdateUser(ctx, msg.update); err != nil {
			m.log.Error(ctx, "saving session after profile update", "error", err)
		}
		return m.toast.Success("Profile updated!"), true

	case jobLoadedMsg:
		if m.screen != ScreenJobDetail || msg.jobID != m.pendingJob {
			return nil, true
		}
		if msg.err != nil {
			failed := m.fail("load job", msg.err, "Could not load job")
			return tea.Batch(failed, m.gotoDashboard()), true
		}
		u := m.state.User()
		role, minRate := model.RoleFreelancer, 0.0
		if u != nil {
			role, minRate = u.Role, u.MinRate
		}
		return m.jobView.SetData(msg.data, role, minRate), true

	case jobPostedMsg:
		if msg.err != nil {
			return m.fail("post job", msg.err, "Failed to publish"), true
		}
		published := m.toast.Success("Job published successfully!")
		return tea.Batch(published, m.gotoDashboard()), true

	case estimateMsg:
		if msg.err != nil {
			return m.fail("estimate cost", msg.err, "Estimation failed"), true
		}
		m.postJobView.SetEstimate(*msg.estimate)
		return m.toast.Success(postjob.EstimateText(*msg.estimate)), true

	case proposalSentMsg:
		if msg.err != nil {
			return m.fail("submit proposal", msg.err, "Submission failed"), true
		}
		sent := m.toast.Success("Proposal sent!")
		return tea.Batch(sent, m.gotoDashboard()), true

	case hiredMsg:
		if msg.err != nil {
			return m.fail("hire", msg.err, "Hiring failed"), true
		}
		hired := m.toast.Success("Contract Generated!")
		return tea.Batch(hired, m.openContract(msg.contractID)), true

	case contractsLoadedMsg:
		if m.screen != ScreenContracts {
			return nil, true
		}
		if msg.err != nil {
			m.contractsView.SetContracts(nil)
			return m.fail("load contracts", msg.err, "Could not load contracts"), true
		}
		m.contractsView.SetContracts(msg.contracts)
		return nil, true

	case contractLoadedMsg:
		if m.screen != ScreenContractDetail || msg.contractID != m.state.ActiveContractID() {
			m.log.Debug(ctx, "ignoring stale contract load", "contract_id", msg.contractID)
			return nil, true
		}
		if msg.err != nil {
			failed := m.fail("load contract", msg.err, "Could not load contract")
			return tea.Batch(failed, m.gotoDashboard()), true
		}
		m.bindContract(*msg.contract)
		return nil, true

	case contractRefreshedMsg:
		if msg.err != nil {
			m.log.Warn(ctx, "refreshing contract failed", "error", msg.err)
			return nil, true
		}
		m.contractView.Refresh(*msg.contract)
		return nil, true

	case contractActionResultMsg:
		texts := actionToasts[msg.action]
		if msg.err != nil {
			return m.fail(string(msg.action)+" contract", msg.err, texts[1]), true
		}
		success := texts[0]
		if msg.action == contract.ActionCancel && msg.message != "" {
			success = msg.message
		}
		shown := m.toast.Success(success)
		if msg.contractID != m.state.ActiveContractID() {
			return shown, true
		}
		return tea.Batch(shown, m.refreshContract(msg.contractID)), true

	case chatSentMsg:
		if msg.err != nil {
			return m.fail("send message", msg.err, "Message failed"), true
		}
		if msg.contractID == m.state.ActiveContractID() {
			m.poller.Refresh(live.ChatKey)
		}
		return nil, true

	case notificationReadMsg:
		if msg.err != nil {
			m.log.Warn(ctx, "marking notification read failed", "error", msg.err)
		}
		m.poller.Refresh(live.NotificationsKey)
		return nil, true

	case notificationsClearedMsg:
		if msg.err != nil {
			return m.fail("clear notifications", msg.err, "Could not clear notifications"), true
		}
		m.poller.Refresh(live.NotificationsKey)
		return m.toast.Success("Notifications cleared"), true
	}
	return nil, false
}

// signIn stores a fresh session, starts its live views and shows the
// dashboard.
func (m *Model) signIn(s model.Session, greeting string) tea.Cmd {
	ctx := context.Background()
	if err := m.state.SignIn(ctx, s); err != nil {
		m.log.Error(ctx, "saving session failed", "error", err)
		return m.toast.Error("Could not save session")
	}
	m.log.Info(ctx, "signed in", "user_id", s.UserID, "role", string(s.Role))
	m.startSession()
	shown := m.toast.Success(greeting)
	return tea.Batch(shown, m.gotoDashboard())
}

// fail logs a failed call and shows its toast.
func (m *Model) fail(op string, err error, fallback string) tea.Cmd {
	m.log.Warn(context.Background(), op+" failed", "error", err)
	return m.toast.Error(api.UserMessage(err, fallback))
}

// capturing reports whether the visible screen is taking text input, in
// which case single-letter shortcuts go to the screen.
func (m Model) capturing() bool {
	switch m.screen {
	case ScreenAuth, ScreenProfile, ScreenPostJob:
		return true
	case ScreenDashboard:
		return m.dashboardView.Typing()
	case ScreenJobDetail:
		return m.jobView.Typing()
	case ScreenContractDetail:
		return m.contractView.Typing()
	default:
		return false
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.poller.StopAll()
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.DarkMode) {
		next := m.toggleDarkMode()
		return m, next
	}

	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc":
			m.alert = ""
		}
		return m, nil
	}

	switch m.overlay {
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.overlay = OverlayNone
		}
		return m, nil
	case OverlayCommand:
		var cmd tea.Cmd
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	case OverlayTray:
		var cmd tea.Cmd
		m.trayView, cmd = m.trayView.Update(msg)
		return m, cmd
	}

	if m.screen != ScreenAuth && !m.capturing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.poller.StopAll()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.overlay = OverlayHelp
			return m, nil
		case key.Matches(msg, m.keys.Command):
			m.overlay = OverlayCommand
			focus := m.commandView.Focus()
			return m, focus
		case key.Matches(msg, m.keys.Notifications):
			m.overlay = OverlayTray
			m.poller.Refresh(live.NotificationsKey)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			next := m.refresh()
			return m, next
		case key.Matches(msg, m.keys.Dashboard):
			next := m.gotoDashboard()
			return m, next
		case key.Matches(msg, m.keys.Contracts):
			next := m.gotoContracts()
			return m, next
		case key.Matches(msg, m.keys.Profile):
			next := m.gotoProfile()
			return m, next
		case key.Matches(msg, m.keys.PostJob):
			next := m.gotoPostJob()
			return m, next
		}
	}

	return m.updateActiveView(msg)
}

// refresh reloads the visible screen and polls the live views now.
func (m *Model) refresh() tea.Cmd {
	m.poller.Refresh(live.NotificationsKey)

	switch m.screen {
	case ScreenDashboard:
		return m.gotoDashboard()
	case ScreenContracts:
		return m.gotoContracts()
	case ScreenJobDetail:
		return m.openJob(m.pendingJob)
	case ScreenContractDetail:
		m.poller.Refresh(live.ChatKey)
		if id := m.state.ActiveContractID(); id != "" {
			return m.refreshContract(id)
		}
	}
	return nil
}

func (m *Model) toggleDarkMode() tea.Cmd {
	dark, err := m.state.ToggleDarkMode(context.Background())
	theme.SetDarkMode(dark)
	if err != nil {
		m.log.Warn(context.Background(), "saving dark mode failed", "error", err)
	}
	if dark {
		return m.toast.Success("Dark mode on")
	}
	return m.toast.Success("Dark mode off")
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case "dashboard", "home":
		return m.gotoDashboard()
	case "contracts":
		return m.gotoContracts()
	case "profile":
		return m.gotoProfile()
	case "post", "post job":
		return m.gotoPostJob()
	case "notifications":
		m.overlay = OverlayTray
		return nil
	case "refresh":
		return m.refresh()
	case "dark":
		return m.toggleDarkMode()
	case "logout":
		out := m.endSession()
		shown := m.toast.Success("Logged out")
		return tea.Batch(out, shown)
	case "quit", "q":
		m.poller.StopAll()
		return tea.Quit
	default:
		return m.toast.Error("Unknown command: " + cmd)
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.overlay == OverlayCommand {
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case ScreenAuth:
		m.authView, cmd = m.authView.Update(msg)
	case ScreenDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ScreenProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	case ScreenPostJob:
		m.postJobView, cmd = m.postJobView.Update(msg)
	case ScreenJobDetail:
		m.jobView, cmd = m.jobView.Update(msg)
	case ScreenContracts:
		m.contractsView, cmd = m.contractsView.Update(msg)
	case ScreenContractDetail:
		m.contractView, cmd = m.contractView.Update(msg)
	}

	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayout(width, height)
	cw := m.layout.ContentWidth(true)
	ch := m.layout.ContentHeight()

	m.authView.SetSize(width, ch)
	m.dashboardView.SetSize(cw, ch)
	m.profileView.SetSize(cw, ch)
	m.postJobView.SetSize(cw, ch)
	m.jobView.SetSize(cw, ch)
	m.contractsView.SetSize(cw, ch)
	m.contractView.SetSize(cw, ch)
	m.trayView.SetSize(width, ch)
	m.helpView.SetSize(width, ch)
	m.commandView.SetSize(width, ch)
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.headerStatus())
	toastLine := m.layout.RenderToast(m.toast.Text(), m.toast.IsError())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, m.renderContent(), toastLine, statusBar)
}

func (m Model) headerTitle() string {
	title := "WorkLance"
	if m.tray != nil && m.tray.BadgeVisible() {
		title += " " + theme.BadgeStyle.Render(fmt.Sprintf("🔔 %d", m.tray.Unread()))
	}
	return title
}

func (m Model) headerStatus() string {
	if m.loading {
		return m.spinner.View() + " loading"
	}
	if u := m.state.User(); u != nil {
		return u.Name
	}
	return ""
}

// renderContent returns the rendered string for the current screen, or
// the overlay drawn above it.
func (m Model) renderContent() string {
	switch {
	case m.alert != "":
		return m.layout.Overlay(theme.AlertStyle.Render(m.alert + "\n\n" + theme.HelpStyle.Render("enter: dismiss")))
	case m.overlay == OverlayHelp:
		return m.layout.Overlay(m.helpView.View())
	case m.overlay == OverlayCommand:
		return m.layout.Overlay(m.commandView.View())
	case m.overlay == OverlayTray:
		return m.layout.Overlay(m.trayView.View())
	}

	if m.screen == ScreenAuth {
		return m.authView.View()
	}

	var view string
	switch m.screen {
	case ScreenDashboard:
		view = m.dashboardView.View()
	case ScreenProfile:
		view = m.profileView.View()
	case ScreenPostJob:
		view = m.postJobView.View()
	case ScreenJobDetail:
		view = m.jobView.View()
	case ScreenContracts:
		view = m.contractsView.View()
	case ScreenContractDetail:
		view = m.contractView.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), view)
}

func (m Model) renderSidebar() string {
	u := m.state.User()
	if u == nil {
		return m.layout.RenderSidebar("", "", m.navEntries())
	}
	user := fmt.Sprintf("%s (%s)", u.Name, u.Role)
	extra := ""
	if u.Role == model.RoleFreelancer {
		extra = fmt.Sprintf("Trust Score: %.0f", u.TrustScore)
	}
	return m.layout.RenderSidebar(user, extra, m.navEntries())
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch {
	case m.alert != "":
		return "enter dismiss | ctrl+c quit"
	case m.overlay == OverlayHelp:
		return "? close help | esc back"
	case m.overlay == OverlayCommand:
		return "enter execute | esc close"
	case m.overlay == OverlayTray:
		return "enter open | C clear all | esc close"
	}

	switch m.screen {
	case ScreenAuth:
		return "enter submit | esc switch form | ctrl+t dark mode | ctrl+c quit"
	case ScreenProfile:
		return "enter next | esc back"
	case ScreenPostJob:
		return "enter next | ctrl+e estimate | esc back"
	case ScreenJobDetail:
		if m.jobView.Typing() {
			return "enter next | esc back"
		}
		return "enter hire | tab recommended | esc back"
	case ScreenContractDetail:
		if m.contractView.Typing() {
			return "enter send | esc stop typing"
		}
		return "i chat | s sign | f fund | R release | x cancel | esc back"
	default:
		hints := []string{"q quit", "? help", ": command", "n alerts", "r refresh", "1-4 screens"}
		if m.screen == ScreenDashboard && m.state.User() != nil && !m.state.User().IsClient() {
			hints = append(hints, "/ search")
		}
		return strings.Join(hints, " | ")
	}
}
