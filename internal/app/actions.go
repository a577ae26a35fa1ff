package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui/contract"
	"github.com/nhle/worklance/internal/ui/dashboard"
	"github.com/nhle/worklance/internal/ui/jobdetail"
)

// completion is implemented by every message that ends a load or an
// action. Receiving one clears the loading indicator, success or not.
type completion interface {
	completes()
}

type done struct{}

func (done) completes() {}

// startupMsg routes the first screen once the program is running.
type startupMsg struct{}

type probeResultMsg struct {
	err error
}

type loginResultMsg struct {
	done
	session *model.Session
	err     error
}

type registerResultMsg struct {
	done
	session model.Session
	err     error
}

type dashboardLoadedMsg struct {
	done
	userID string
	data   dashboard.Data
	err    error
}

type searchResultMsg struct {
	done
	query string
	jobs  []model.Job
	err   error
}

type profileLoadedMsg struct {
	done
	profile *model.Profile
	err     error
}

type profileSavedMsg struct {
	done
	update model.ProfileUpdate
	err    error
}

type jobLoadedMsg struct {
	done
	jobID string
	data  jobdetail.Data
	err   error
}

type jobPostedMsg struct {
	done
	jobID string
	err   error
}

type estimateMsg struct {
	done
	estimate *model.CostEstimate
	err      error
}

type proposalSentMsg struct {
	done
	err error
}

type hiredMsg struct {
	done
	contractID string
	err        error
}

type contractsLoadedMsg struct {
	done
	contracts []model.Contract
	err       error
}

type contractLoadedMsg struct {
	done
	contractID string
	contract   *model.Contract
	err        error
}

type contractRefreshedMsg struct {
	contract *model.Contract
	err      error
}

type contractActionResultMsg struct {
	done
	action     contract.Action
	contractID string
	message    string
	err        error
}

type chatSentMsg struct {
	contractID string
	err        error
}

type notificationReadMsg struct {
	err error
}

type notificationsClearedMsg struct {
	err error
}

// probe checks that the backend answers at all.
func (m Model) probe() tea.Cmd {
	c := m.client
	timeout := m.cfg.API.ProbeTimeout()
	return func() tea.Msg {
		return probeResultMsg{err: c.Ping(context.Background(), timeout)}
	}
}

func (m Model) login(email, password string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		s, err := c.Login(context.Background(), email, password)
		return loginResultMsg{session: s, err: err}
	}
}

func (m Model) register(r model.Registration) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		id, err := c.Register(context.Background(), r)
		if err != nil {
			return registerResultMsg{err: err}
		}
		return registerResultMsg{session: model.NewSessionFromRegistration(id, r)}
	}
}

// loadDashboard fetches the role-specific dashboard lists in parallel.
func (m Model) loadDashboard() tea.Cmd {
	c := m.client
	u := m.state.User()
	if u == nil {
		return nil
	}
	userID, isClient := u.UserID, u.IsClient()

	return func() tea.Msg {
		var d dashboard.Data
		g, ctx := errgroup.WithContext(context.Background())

		g.Go(func() error {
			var err error
			d.Contracts, err = c.ListContracts(ctx, userID)
			return err
		})
		if isClient {
			g.Go(func() error {
				var err error
				d.Jobs, err = c.ClientJobs(ctx, userID)
				return err
			})
		} else {
			g.Go(func() error {
				var err error
				d.Jobs, err = c.MatchJobs(ctx, userID)
				return err
			})
			g.Go(func() error {
				var err error
				d.Proposals, err = c.FreelancerProposals(ctx, userID)
				return err
			})
		}

		err := g.Wait()
		return dashboardLoadedMsg{userID: userID, data: d, err: err}
	}
}

func (m Model) search(query string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		jobs, err := c.SearchJobs(context.Background(), query)
		return searchResultMsg{query: query, jobs: jobs, err: err}
	}
}

func (m Model) loadProfile() tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		p, err := c.GetUser(context.Background(), userID)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m Model) saveProfile(u model.ProfileUpdate) tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		err := c.UpdateUser(context.Background(), userID, u)
		return profileSavedMsg{update: u, err: err}
	}
}

// loadJob fetches a job and, for clients, its proposals and curated
// freelancers. Curated recommendations are optional.
func (m Model) loadJob(jobID string) tea.Cmd {
	c := m.client
	log := m.log
	isClient := m.state.User() != nil && m.state.User().IsClient()

	return func() tea.Msg {
		var d jobdetail.Data
		g, ctx := errgroup.WithContext(context.Background())

		g.Go(func() error {
			job, err := c.GetJob(ctx, jobID)
			if err != nil {
				return err
			}
			d.Job = *job
			return nil
		})
		if isClient {
			g.Go(func() error {
				var err error
				d.Proposals, err = c.JobProposals(ctx, jobID)
				return err
			})
			g.Go(func() error {
				curated, err := c.CuratedFreelancers(ctx, jobID)
				if err != nil {
					log.Warn(ctx, "curated freelancers unavailable", "job_id", jobID, "error", err)
					return nil
				}
				d.Curated = curated
				return nil
			})
		}

		err := g.Wait()
		return jobLoadedMsg{jobID: jobID, data: d, err: err}
	}
}

func (m Model) postJob(draft model.JobDraft) tea.Cmd {
	c := m.client
	draft.ClientID = m.state.UserID()
	return func() tea.Msg {
		id, err := c.CreateJob(context.Background(), draft)
		return jobPostedMsg{jobID: id, err: err}
	}
}

func (m Model) estimate(req model.EstimateRequest) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		est, err := c.EstimateCost(context.Background(), req)
		return estimateMsg{estimate: est, err: err}
	}
}

func (m Model) submitProposal(draft model.ProposalDraft) tea.Cmd {
	c := m.client
	draft.FreelancerID = m.state.UserID()
	return func() tea.Msg {
		return proposalSentMsg{err: c.SubmitProposal(context.Background(), draft)}
	}
}

func (m Model) hire(msg jobdetail.HireMsg) tea.Cmd {
	c := m.client
	draft := model.ContractDraft{
		JobID:        msg.Job.ID,
		FreelancerID: msg.Proposal.FreelancerID,
		ClientID:     m.state.UserID(),
		Price:        msg.Proposal.Price,
		Scope:        msg.Job.Title,
		Timeline:     msg.Proposal.Timeline,
	}
	return func() tea.Msg {
		id, err := c.CreateContract(context.Background(), draft)
		return hiredMsg{contractID: id, err: err}
	}
}

func (m Model) loadContracts() tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		cs, err := c.ListContracts(context.Background(), userID)
		return contractsLoadedMsg{contracts: cs, err: err}
	}
}

func (m Model) loadContract(contractID string) tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		ct, err := c.GetContract(context.Background(), userID, contractID)
		return contractLoadedMsg{contractID: contractID, contract: ct, err: err}
	}
}

func (m Model) refreshContract(contractID string) tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		ct, err := c.GetContract(context.Background(), userID, contractID)
		return contractRefreshedMsg{contract: ct, err: err}
	}
}

func (m Model) contractAction(a contract.Action, contractID string) tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		ctx := context.Background()
		var (
			message string
			err     error
		)
		switch a {
		case contract.ActionSign:
			err = c.AcceptContract(ctx, contractID, userID)
		case contract.ActionFund:
			message, err = c.FundEscrow(ctx, contractID)
		case contract.ActionRelease:
			message, err = c.ReleaseEscrow(ctx, contractID)
		case contract.ActionCancel:
			message, err = c.CancelEscrow(ctx, contractID, userID)
		default:
			err = errors.New("unknown contract action " + string(a))
		}
		return contractActionResultMsg{action: a, contractID: contractID, message: message, err: err}
	}
}

func (m Model) sendChat(contractID, text string) tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		err := c.SendMessage(context.Background(), contractID, userID, text)
		return chatSentMsg{contractID: contractID, err: err}
	}
}

func (m Model) markNotificationRead(id string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		return notificationReadMsg{err: c.MarkNotificationRead(context.Background(), id)}
	}
}

func (m Model) clearNotifications() tea.Cmd {
	c := m.client
	userID := m.state.UserID()
	return func() tea.Msg {
		return notificationsClearedMsg{err: c.ClearNotifications(context.Background(), userID)}
	}
}

// actionToasts holds the success and fallback failure texts per contract
// action. Cancellation shows the backend's own message when there is one.
var actionToasts = map[contract.Action][2]string{
	contract.ActionSign:    {"Contract signed!", "Signing failed"},
	contract.ActionFund:    {"Escrow funded!", "Funding failed"},
	contract.ActionRelease: {"Payment released!", "Release failed"},
	contract.ActionCancel:  {"Order cancelled", "Cancellation failed"},
}
