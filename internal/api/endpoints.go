package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nhle/worklance/internal/model"
)

// messageResponse is the generic {"message": "..."} acknowledgement.
type messageResponse struct {
	Message string `json:"message"`
}

func escape(id string) string {
	return url.PathEscape(id)
}

// === Auth ===

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var s model.Session
	if err := c.post(ctx, "/auth/login", body, &s); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	s.Normalize()
	s.Email = email
	return &s, nil
}

// Register creates an account and returns the new user id.
func (c *Client) Register(ctx context.Context, r model.Registration) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	if err := c.post(ctx, "/auth/register", r, &resp); err != nil {
		return "", fmt.Errorf("registering: %w", err)
	}
	return resp.UserID, nil
}

// === Users ===

func (c *Client) GetUser(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	if err := c.get(ctx, "/users/"+escape(userID), &p); err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}
	return &p, nil
}

func (c *Client) UpdateUser(ctx context.Context, userID string, u model.ProfileUpdate) error {
	if err := c.put(ctx, "/users/"+escape(userID), u, nil); err != nil {
		return fmt.Errorf("updating profile %s: %w", userID, err)
	}
	return nil
}

// === Jobs ===

func (c *Client) ListJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := c.get(ctx, "/jobs", &jobs); err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// GetJob finds a job by id. The backend has no single-job endpoint, so the
// full listing is filtered client-side.
func (c *Client) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	jobs, err := c.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
}

func (c *Client) ClientJobs(ctx context.Context, clientID string) ([]model.Job, error) {
	var jobs []model.Job
	q := url.Values{"client_id": {clientID}}
	if err := c.get(ctx, "/jobs?"+q.Encode(), &jobs); err != nil {
		return nil, fmt.Errorf("listing jobs for client %s: %w", clientID, err)
	}
	return jobs, nil
}

// MatchJobs returns open jobs ranked for a freelancer.
func (c *Client) MatchJobs(ctx context.Context, freelancerID string) ([]model.Job, error) {
	var jobs []model.Job
	if err := c.get(ctx, "/jobs/match/"+escape(freelancerID), &jobs); err != nil {
		return nil, fmt.Errorf("matching jobs for %s: %w", freelancerID, err)
	}
	return jobs, nil
}

func (c *Client) SearchJobs(ctx context.Context, query string) ([]model.Job, error) {
	var jobs []model.Job
	q := url.Values{"q": {query}}
	if err := c.get(ctx, "/jobs/search?"+q.Encode(), &jobs); err != nil {
		return nil, fmt.Errorf("searching jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob publishes a job and returns its id.
func (c *Client) CreateJob(ctx context.Context, draft model.JobDraft) (string, error) {
	var resp struct {
		JobID string `json:"job_id"`
	}
	if err := c.post(ctx, "/jobs", draft, &resp); err != nil {
		return "", fmt.Errorf("posting job: %w", err)
	}
	return resp.JobID, nil
}

func (c *Client) EstimateCost(ctx context.Context, req model.EstimateRequest) (*model.CostEstimate, error) {
	var est model.CostEstimate
	if err := c.post(ctx, "/jobs/estimate-cost", req, &est); err != nil {
		return nil, fmt.Errorf("estimating cost: %w", err)
	}
	return &est, nil
}

func (c *Client) CuratedFreelancers(ctx context.Context, jobID string) ([]model.CuratedFreelancer, error) {
	var out []model.CuratedFreelancer
	if err := c.get(ctx, "/jobs/"+escape(jobID)+"/curated-freelancers", &out); err != nil {
		return nil, fmt.Errorf("loading curated freelancers for %s: %w", jobID, err)
	}
	return out, nil
}

// === Proposals ===

func (c *Client) JobProposals(ctx context.Context, jobID string) ([]model.Proposal, error) {
	var out []model.Proposal
	if err := c.get(ctx, "/proposals/"+escape(jobID), &out); err != nil {
		return nil, fmt.Errorf("loading proposals for %s: %w", jobID, err)
	}
	return out, nil
}

func (c *Client) FreelancerProposals(ctx context.Context, freelancerID string) ([]model.Proposal, error) {
	var out []model.Proposal
	if err := c.get(ctx, "/proposals/freelancer/"+escape(freelancerID), &out); err != nil {
		return nil, fmt.Errorf("loading proposals by %s: %w", freelancerID, err)
	}
	return out, nil
}

func (c *Client) SubmitProposal(ctx context.Context, draft model.ProposalDraft) error {
	if err := c.post(ctx, "/proposals", draft, nil); err != nil {
		return fmt.Errorf("submitting proposal: %w", err)
	}
	return nil
}

// === Contracts ===

func (c *Client) ListContracts(ctx context.Context, userID string) ([]model.Contract, error) {
	var out []model.Contract
	q := url.Values{"user_id": {userID}}
	if err := c.get(ctx, "/contracts?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return out, nil
}

// GetContract finds one of the user's contracts by id.
func (c *Client) GetContract(ctx context.Context, userID, contractID string) (*model.Contract, error) {
	contracts, err := c.ListContracts(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		if contracts[i].ID == contractID {
			return &contracts[i], nil
		}
	}
	return nil, fmt.Errorf("contract %s: %w", contractID, ErrNotFound)
}

// CreateContract generates a contract from an accepted proposal and returns its id.
func (c *Client) CreateContract(ctx context.Context, draft model.ContractDraft) (string, error) {
	var resp struct {
		ContractID string `json:"contract_id"`
	}
	if err := c.post(ctx, "/contracts", draft, &resp); err != nil {
		return "", fmt.Errorf("creating contract: %w", err)
	}
	return resp.ContractID, nil
}

// AcceptContract records the user's signature.
func (c *Client) AcceptContract(ctx context.Context, contractID, userID string) error {
	body := map[string]string{"contract_id": contractID, "user_id": userID}
	if err := c.put(ctx, "/contracts/"+escape(contractID)+"/accept", body, nil); err != nil {
		return fmt.Errorf("accepting contract %s: %w", contractID, err)
	}
	return nil
}

// === Escrow ===

// FundEscrow moves the contract into escrow and returns the server message.
func (c *Client) FundEscrow(ctx context.Context, contractID string) (string, error) {
	var resp messageResponse
	if err := c.post(ctx, "/escrow/fund/"+escape(contractID), nil, &resp); err != nil {
		return "", fmt.Errorf("funding escrow for %s: %w", contractID, err)
	}
	return resp.Message, nil
}

// ReleaseEscrow pays the freelancer and returns the server message.
func (c *Client) ReleaseEscrow(ctx context.Context, contractID string) (string, error) {
	var resp messageResponse
	if err := c.post(ctx, "/escrow/release/"+escape(contractID), nil, &resp); err != nil {
		return "", fmt.Errorf("releasing escrow for %s: %w", contractID, err)
	}
	return resp.Message, nil
}

// CancelEscrow cancels the order on behalf of userID and returns the server message.
func (c *Client) CancelEscrow(ctx context.Context, contractID, userID string) (string, error) {
	var resp messageResponse
	q := url.Values{"user_id": {userID}}
	if err := c.post(ctx, "/escrow/cancel/"+escape(contractID)+"?"+q.Encode(), nil, &resp); err != nil {
		return "", fmt.Errorf("cancelling contract %s: %w", contractID, err)
	}
	return resp.Message, nil
}

// === Messages ===

// Messages returns a contract's chat history in server order.
func (c *Client) Messages(ctx context.Context, contractID string) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	if err := c.get(ctx, "/messages/"+escape(contractID), &out); err != nil {
		return nil, fmt.Errorf("loading messages for %s: %w", contractID, err)
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, contractID, senderID, text string) error {
	body := map[string]string{
		"contract_id": contractID,
		"sender_id":   senderID,
		"text":        text,
	}
	if err := c.post(ctx, "/messages", body, nil); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

// === Notifications ===

// Notifications returns the user's notifications in server (oldest-first) order.
func (c *Client) Notifications(ctx context.Context, userID string) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.get(ctx, "/notifications/"+escape(userID), &out); err != nil {
		return nil, fmt.Errorf("loading notifications: %w", err)
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := c.put(ctx, "/notifications/read/"+escape(notificationID), nil, nil); err != nil {
		return fmt.Errorf("marking notification %s read: %w", notificationID, err)
	}
	return nil
}

func (c *Client) ClearNotifications(ctx context.Context, userID string) error {
	if err := c.remove(ctx, "/notifications/"+escape(userID), nil); err != nil {
		return fmt.Errorf("clearing notifications: %w", err)
	}
	return nil
}
