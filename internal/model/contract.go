package model

// Contract statuses reported by the backend.
const (
	ContractStatusDraft     = "draft"
	ContractStatusActive    = "active"
	ContractStatusInEscrow  = "in_escrow"
	ContractStatusCompleted = "completed"
	ContractStatusCancelled = "cancelled"
)

// Contract is an agreement between a client and a freelancer.
type Contract struct {
	ID                 string    `json:"id"`
	JobID              string    `json:"job_id"`
	ClientID           string    `json:"client_id"`
	FreelancerID       string    `json:"freelancer_id"`
	Price              float64   `json:"price"`
	Scope              string    `json:"scope"`
	Timeline           string    `json:"timeline"`
	Text               string    `json:"text"`
	Status             string    `json:"status"`
	ClientAccepted     bool      `json:"client_accepted"`
	FreelancerAccepted bool      `json:"freelancer_accepted"`
	Deadline           Timestamp `json:"deadline"`
	CreatedAt          Timestamp `json:"created_at"`
}

// Title returns the scope, or a generic label when the scope is empty.
func (c Contract) Title() string {
	if c.Scope == "" {
		return "Professional Agreement"
	}
	return c.Scope
}

// IsOngoing reports whether the contract still counts as active work.
func (c Contract) IsOngoing() bool {
	return c.Status != ContractStatusCompleted
}

// AcceptedBy reports whether the given user has signed the contract.
func (c Contract) AcceptedBy(userID string) bool {
	if userID == c.ClientID {
		return c.ClientAccepted
	}
	return c.FreelancerAccepted
}

// ContractDraft is the POST /contracts payload.
type ContractDraft struct {
	JobID        string  `json:"job_id"`
	FreelancerID string  `json:"freelancer_id"`
	ClientID     string  `json:"client_id"`
	Price        float64 `json:"price"`
	Scope        string  `json:"scope"`
	Timeline     string  `json:"timeline"`
}

// ChatMessage is one entry of a contract's chat history.
type ChatMessage struct {
	ContractID string    `json:"contract_id"`
	SenderID   string    `json:"sender_id"`
	Text       string    `json:"text"`
	Timestamp  Timestamp `json:"timestamp"`
}
