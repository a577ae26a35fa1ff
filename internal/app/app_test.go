package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/api"
	"github.com/nhle/worklance/internal/deadline"
	"github.com/nhle/worklance/internal/live"
	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/session"
	"github.com/nhle/worklance/internal/store"
	appsync "github.com/nhle/worklance/internal/sync"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/auth"
	"github.com/nhle/worklance/internal/ui/command"
	"github.com/nhle/worklance/internal/ui/tray"
	"github.com/nhle/worklance/tests/testutil"
)

// settle is how long a command batch may stay quiet before it is
// considered finished. Timer commands such as toast expiry never finish
// within it and are dropped.
const settle = 250 * time.Millisecond

var contractsJSON = `[
	{"id":"A","client_id":"u1","freelancer_id":"f1","scope":"Logo","status":"active","deadline":"2030-01-01T00:00:00Z"},
	{"id":"B","client_id":"u1","freelancer_id":"f2","scope":"Site","status":"in_escrow","deadline":"2030-02-01T00:00:00Z"},
	{"id":"C","client_id":"u1","freelancer_id":"f3","scope":"Copy","status":"draft"}
]`

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": "u1", "name": "Ana", "role": "client", "trust_score": 0,
			})
		case r.URL.Path == "/contracts":
			_, _ = w.Write([]byte(contractsJSON))
		case r.URL.Path == "/jobs":
			_, _ = w.Write([]byte(`[{"id":"job_7","client_id":"u1","title":"Logo","status":"open"}]`))
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type harness struct {
	t     *testing.T
	m     Model
	store *store.SQLiteStore
	url   string
}

func testConfig(url string) *model.AppConfig {
	return &model.AppConfig{
		API: model.APIConfig{BaseURL: url, TimeoutSec: 5, ProbeTimeoutSec: 1},
		Poll: model.PollConfig{
			ChatMs:          int(time.Hour / time.Millisecond),
			NotificationsMs: int(time.Hour / time.Millisecond),
			DeadlineMs:      int(time.Hour / time.Millisecond),
		},
		Storage: model.StorageConfig{SessionBackend: model.SessionBackendSQLite},
	}
}

func newModel(t *testing.T, url string, s *store.SQLiteStore) Model {
	t.Helper()
	state := session.New(s, logging.Nop())
	require.NoError(t, state.Restore(context.Background()))

	m := New(testConfig(url), api.NewClient(url, 5*time.Second, logging.Nop()), state, logging.Nop())
	m.now = func() time.Time { return time.Date(2029, 12, 30, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(m.Close)
	return m
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessOn(t, fakeBackend(t))
}

func newHarnessOn(t *testing.T, srv *httptest.Server) *harness {
	t.Helper()
	s := testutil.NewTestStore(t)
	h := &harness{t: t, m: newModel(t, srv.URL, s), store: s, url: srv.URL}
	h.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// signedIn returns a harness whose session belongs to client u1.
func signedIn(t *testing.T) *harness {
	t.Helper()
	return signIn(t, newHarness(t))
}

func signIn(t *testing.T, h *harness) *harness {
	t.Helper()
	require.NoError(t, h.m.state.SignIn(context.Background(), model.Session{
		UserID: "u1", Name: "Ana", Role: model.RoleClient,
	}))
	return h
}

// update runs one message through Update and discards its commands.
func (h *harness) update(msg tea.Msg) {
	mdl, _ := h.m.Update(msg)
	h.m = mdl.(Model)
}

// send runs msg through Update and keeps feeding back every message its
// commands produce until they go quiet.
func (h *harness) send(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		mdl, cmd := h.m.Update(next)
		h.m = mdl.(Model)
		queue = append(queue, collect(cmd)...)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	out := make(chan tea.Msg, 64)
	var launch func(tea.Cmd)
	launch = func(c tea.Cmd) {
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					if sub != nil {
						launch(sub)
					}
				}
				return
			}
			out <- msg
		}()
	}
	launch(cmd)

	var msgs []tea.Msg
	for {
		select {
		case msg := <-out:
			switch msg.(type) {
			case nil, spinner.TickMsg:
			default:
				msgs = append(msgs, msg)
			}
		case <-time.After(settle):
			return msgs
		}
	}
}

func TestOpeningSecondContractReplacesLiveViews(t *testing.T) {
	h := signedIn(t)

	h.send(ui.OpenContractMsg{ContractID: "A"})
	require.Equal(t, "A", h.m.contractView.ContractID())
	assert.Equal(t, "A", h.m.state.ActiveContractID())
	assert.True(t, h.m.poller.Live(live.ChatKey))
	assert.True(t, h.m.poller.Live(deadline.Key))
	assert.Equal(t, 2, h.m.poller.Len())

	first, ok := h.m.poller.Status(live.ChatKey)
	require.True(t, ok)

	h.send(ui.OpenContractMsg{ContractID: "B"})
	assert.Equal(t, "B", h.m.contractView.ContractID())
	assert.Equal(t, 2, h.m.poller.Len())
	assert.False(t, h.m.poller.IsCurrent(live.ChatKey, first.Generation))
}

func TestLateContractLoadIsIgnored(t *testing.T) {
	h := signedIn(t)

	h.update(ui.OpenContractMsg{ContractID: "A"})
	h.send(ui.OpenContractMsg{ContractID: "B"})
	require.Equal(t, "B", h.m.contractView.ContractID())

	a := model.Contract{ID: "A", ClientID: "u1", Status: model.ContractStatusActive}
	h.send(contractLoadedMsg{contractID: "A", contract: &a})

	assert.Equal(t, "B", h.m.contractView.ContractID())
	assert.Equal(t, "B", h.m.state.ActiveContractID())
	assert.Equal(t, 2, h.m.poller.Len())
}

func TestLeavingContractDetailStopsLiveViews(t *testing.T) {
	h := signedIn(t)

	h.send(ui.OpenContractMsg{ContractID: "A"})
	require.True(t, h.m.poller.Live(live.ChatKey))

	h.send(ui.BackMsg{})
	assert.Equal(t, ScreenDashboard, h.m.screen)
	assert.False(t, h.m.poller.Live(live.ChatKey))
	assert.False(t, h.m.poller.Live(deadline.Key))
	assert.Empty(t, h.m.state.ActiveContractID())
}

func TestContractWithoutDeadlineBindsNoTimer(t *testing.T) {
	h := signedIn(t)

	h.send(ui.OpenContractMsg{ContractID: "C"})
	assert.Equal(t, "C", h.m.contractView.ContractID())
	assert.True(t, h.m.poller.Live(live.ChatKey))
	assert.False(t, h.m.poller.Live(deadline.Key))
}

func TestStalePollResultIsDropped(t *testing.T) {
	h := signedIn(t)

	h.send(ui.OpenContractMsg{ContractID: "A"})
	old, _ := h.m.poller.Status(live.ChatKey)
	h.send(ui.OpenContractMsg{ContractID: "B"})
	current, _ := h.m.poller.Status(live.ChatKey)

	h.update(appsync.ResultMsg{
		Key:        live.ChatKey,
		Generation: old.Generation,
		Value: live.ChatBatch{ContractID: "B", Messages: []model.ChatMessage{
			{ContractID: "B", SenderID: "f2", Text: "stale hello"},
		}},
	})
	assert.NotContains(t, h.m.contractView.View(), "stale hello")

	h.update(appsync.ResultMsg{
		Key:        live.ChatKey,
		Generation: current.Generation,
		Value: live.ChatBatch{ContractID: "B", Messages: []model.ChatMessage{
			{ContractID: "B", SenderID: "f2", Text: "fresh hello"},
		}},
	})
	assert.Contains(t, h.m.contractView.View(), "fresh hello")
}

func TestLoginStartsNotifications(t *testing.T) {
	h := newHarness(t)
	h.send(startupMsg{})
	require.Equal(t, ScreenAuth, h.m.screen)

	h.send(auth.LoginSubmitMsg{Email: "ana@example.com", Password: "pw"})
	assert.True(t, h.m.state.LoggedIn())
	assert.Equal(t, ScreenDashboard, h.m.screen)
	assert.True(t, h.m.poller.Live(live.NotificationsKey))
	assert.Equal(t, "Logged in successfully!", h.m.toast.Text())
	assert.Contains(t, h.m.helpView.View(), "post job")

	restarted := newModel(t, h.url, h.store)
	mdl, _ := restarted.Update(startupMsg{})
	assert.Equal(t, ScreenDashboard, mdl.(Model).screen)
}

func TestLogoutClearsSessionAndRestartShowsAuth(t *testing.T) {
	h := newHarness(t)
	h.send(auth.LoginSubmitMsg{Email: "ana@example.com", Password: "pw"})
	require.True(t, h.m.state.LoggedIn())

	h.send(command.CommandMsg("logout"))
	assert.Equal(t, ScreenAuth, h.m.screen)
	assert.False(t, h.m.state.LoggedIn())
	assert.Zero(t, h.m.poller.Len())

	_, found, err := h.store.Get(context.Background(), session.UserKey)
	require.NoError(t, err)
	assert.False(t, found)

	restarted := newModel(t, h.url, h.store)
	mdl, _ := restarted.Update(startupMsg{})
	assert.Equal(t, ScreenAuth, mdl.(Model).screen)
}

func TestProbeFailureShowsAlert(t *testing.T) {
	h := newHarness(t)

	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	err := api.NewClient(dead.URL, time.Second, logging.Nop()).Ping(context.Background(), 200*time.Millisecond)
	require.Error(t, err)

	h.update(probeResultMsg{err: err})
	assert.NotEmpty(t, h.m.alert)
	assert.Equal(t, "Backend unreachable", h.m.toast.Text())
	assert.True(t, h.m.toast.IsError())

	h.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, h.m.alert)
}

func TestNotificationClickOpensJob(t *testing.T) {
	h := signedIn(t)
	h.m.startSession()
	h.m.overlay = OverlayTray

	h.send(tray.OpenMsg{Notification: model.Notification{
		ID: "n1", Type: model.NotificationProposal, Link: "job_job_7",
	}})

	assert.Equal(t, OverlayNone, h.m.overlay)
	assert.Equal(t, ScreenJobDetail, h.m.screen)
	assert.Equal(t, "job_7", h.m.jobView.JobID())
}

func TestGlobalKeysWaitWhileTyping(t *testing.T) {
	h := signedIn(t)
	h.send(ui.OpenContractMsg{ContractID: "A"})

	h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	require.True(t, h.m.contractView.Typing())

	h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, OverlayNone, h.m.overlay)
	assert.Equal(t, ScreenContractDetail, h.m.screen)
}

func TestDarkModeTogglePersists(t *testing.T) {
	h := newHarness(t)

	h.update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, h.m.state.DarkMode())

	raw, found, err := h.store.Get(context.Background(), session.DarkKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "true", raw)
}

func TestViewShowsSidebarForSignedInUser(t *testing.T) {
	h := signedIn(t)
	h.send(ui.BackMsg{})

	view := h.m.View()
	assert.True(t, strings.Contains(view, "Ana (client)"))
	assert.Contains(t, view, "Post Job")
}

func TestFailedContractLoadClearsLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/contracts" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"boom"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	h := signIn(t, newHarnessOn(t, srv))

	h.send(ui.OpenContractMsg{ContractID: "A"})

	assert.False(t, h.m.loading)
	assert.Equal(t, ScreenDashboard, h.m.screen)
	assert.Equal(t, "boom", h.m.toast.Text())
	assert.True(t, h.m.toast.IsError())
	assert.Zero(t, h.m.poller.Len())
	assert.Empty(t, h.m.state.ActiveContractID())
}

func TestSearchResultAfterLeavingDashboardIsIgnored(t *testing.T) {
	h := signedIn(t)
	h.send(ui.BackMsg{})
	require.Equal(t, ScreenDashboard, h.m.screen)

	h.send(command.CommandMsg("contracts"))
	require.Equal(t, ScreenContracts, h.m.screen)

	h.update(searchResultMsg{query: "logo", jobs: []model.Job{{ID: "job_9", Title: "Logo"}}})
	assert.Empty(t, h.m.toast.Text())
	assert.NotContains(t, h.m.dashboardView.View(), `Results for "logo"`)

	h.send(ui.BackMsg{})
	h.update(searchResultMsg{query: "logo", jobs: []model.Job{{ID: "job_9", Title: "Logo"}}})
	assert.Equal(t, "Found 1 jobs", h.m.toast.Text())
}
