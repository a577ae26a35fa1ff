package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/worklance/internal/deadline"
	"github.com/nhle/worklance/internal/live"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/auth"
)

// Screen is the page shown in the content area. Exactly one is visible.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenDashboard
	ScreenProfile
	ScreenPostJob
	ScreenJobDetail
	ScreenContracts
	ScreenContractDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "auth"
	case ScreenDashboard:
		return "dashboard"
	case ScreenProfile:
		return "profile"
	case ScreenPostJob:
		return "post-job"
	case ScreenJobDetail:
		return "job-detail"
	case ScreenContracts:
		return "contracts"
	case ScreenContractDetail:
		return "contract-detail"
	default:
		return "unknown"
	}
}

// Overlay is drawn above the current screen without replacing it.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayCommand
	OverlayTray
)

// show makes s the visible screen. Leaving the contract detail screen
// tears down its chat and countdown.
func (m *Model) show(s Screen) {
	if s != ScreenContractDetail {
		m.unbindContract()
	}
	if m.screen != s {
		m.log.Debug(context.Background(), "screen", "from", m.screen.String(), "to", s.String())
	}
	m.screen = s
}

// startLoading raises the loading flag and starts the spinner.
func (m *Model) startLoading() tea.Cmd {
	m.loading = true
	return m.spinner.Tick
}

func (m *Model) gotoAuth() tea.Cmd {
	m.show(ScreenAuth)
	return m.authView.Reset(auth.ModeLogin)
}

func (m *Model) gotoDashboard() tea.Cmd {
	m.show(ScreenDashboard)
	spin := m.startLoading()
	return tea.Batch(spin, m.loadDashboard())
}

func (m *Model) gotoContracts() tea.Cmd {
	m.show(ScreenContracts)
	m.contractsView.Clear()
	spin := m.startLoading()
	return tea.Batch(spin, m.loadContracts())
}

func (m *Model) gotoProfile() tea.Cmd {
	m.show(ScreenProfile)
	m.profileView.Clear()
	spin := m.startLoading()
	return tea.Batch(spin, m.loadProfile())
}

// gotoPostJob shows the job form. Only clients post jobs.
func (m *Model) gotoPostJob() tea.Cmd {
	if u := m.state.User(); u == nil || !u.IsClient() {
		return nil
	}
	m.show(ScreenPostJob)
	return m.postJobView.Reset()
}

func (m *Model) openJob(jobID string) tea.Cmd {
	m.show(ScreenJobDetail)
	m.jobView.Clear()
	m.pendingJob = jobID
	spin := m.startLoading()
	return tea.Batch(spin, m.loadJob(jobID))
}

// openContract shows the detail screen for contractID. Any previous
// contract is unbound before the new one loads; the chat and countdown
// are bound only once the contract arrives.
func (m *Model) openContract(contractID string) tea.Cmd {
	m.unbindContract()
	m.show(ScreenContractDetail)
	m.state.SetActiveContract(contractID)
	spin := m.startLoading()
	return tea.Batch(spin, m.loadContract(contractID))
}

// bindContract starts the live views of a loaded contract if it is still
// the one the user is looking at. It reports whether it bound.
func (m *Model) bindContract(c model.Contract) bool {
	if m.screen != ScreenContractDetail || c.ID != m.state.ActiveContractID() {
		m.log.Debug(context.Background(), "ignoring stale contract load", "contract_id", c.ID)
		return false
	}

	userID := m.state.UserID()
	chat := live.NewChat(c.ID, userID)

	var timer *deadline.Timer
	if !c.Deadline.IsZero() {
		timer = deadline.NewTimer(c.ID, c.Deadline.Time)
	}

	m.contractView.Bind(c, userID, chat, timer)

	m.poller.Start(live.ChatKey, m.cfg.Poll.ChatInterval(), live.ChatFetcher(m.client, c.ID))
	if timer != nil {
		m.poller.Start(deadline.Key, m.cfg.Poll.DeadlineInterval(), deadline.Fetcher(c.ID, m.now))
	}
	return true
}

// unbindContract stops the chat and countdown and forgets the active
// contract. It is safe to call when nothing is bound.
func (m *Model) unbindContract() {
	m.poller.Stop(live.ChatKey)
	m.poller.Stop(deadline.Key)
	m.state.ClearActiveContract()
	m.contractView.Clear()
}

// startSession starts the per-user live views after sign-in or restore.
func (m *Model) startSession() {
	u := m.state.User()
	if u == nil {
		return
	}
	m.tray = live.NewTray(u.UserID)
	m.trayView.SetTray(m.tray)
	m.dashboardView.Reset(u.Role)
	m.helpView.SetRole(u.Role)
	m.poller.Start(live.NotificationsKey, m.cfg.Poll.NotificationsInterval(), live.NotificationsFetcher(m.client, u.UserID))
}

// endSession stops every poll and forgets the user.
func (m *Model) endSession() tea.Cmd {
	m.poller.StopAll()
	m.helpView.SetRole("")
	m.contractView.Clear()
	if err := m.state.SignOut(context.Background()); err != nil {
		m.log.Error(context.Background(), "sign out failed", "error", err)
	}
	m.tray = nil
	m.trayView.SetTray(nil)
	m.overlay = OverlayNone
	m.loading = false
	return m.gotoAuth()
}

// navigate follows a clicked notification.
func (m *Model) navigate(dest live.Destination) tea.Cmd {
	switch dest.Kind {
	case live.DestinationContract:
		return m.openContract(dest.ID)
	case live.DestinationJob:
		return m.openJob(dest.ID)
	default:
		return nil
	}
}

// navEntries lists the sidebar entries for the signed-in role.
func (m Model) navEntries() []ui.NavEntry {
	active := m.screen
	switch active {
	case ScreenJobDetail:
		active = ScreenDashboard
	case ScreenContractDetail:
		active = ScreenContracts
	}

	entries := []ui.NavEntry{
		{Label: "Dashboard", Key: "1", Active: active == ScreenDashboard},
		{Label: "Contracts", Key: "2", Active: active == ScreenContracts},
		{Label: "Profile", Key: "3", Active: active == ScreenProfile},
	}
	if u := m.state.User(); u != nil && u.IsClient() {
		entries = append(entries, ui.NavEntry{Label: "Post Job", Key: "4", Active: active == ScreenPostJob})
	}
	return entries
}
