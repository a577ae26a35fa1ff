package model

// Job statuses reported by the backend.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
)

// Job is a posted piece of work. MatchScore and MatchReason are only set by
// the freelancer matching endpoint.
type Job struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Budget         float64   `json:"budget"`
	Timeline       string    `json:"timeline"`
	Languages      []string  `json:"languages"`
	Region         string    `json:"region"`
	Status         string    `json:"status"`
	CreatedAt      Timestamp `json:"created_at"`
	MatchScore     float64   `json:"match_score,omitempty"`
	MatchReason    string    `json:"match_reason,omitempty"`
}

// JobDraft is the POST /jobs payload.
type JobDraft struct {
	ClientID       string   `json:"client_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Budget         float64  `json:"budget"`
	Timeline       string   `json:"timeline"`
	Languages      []string `json:"languages"`
	Region         string   `json:"region"`
}

// EstimateRequest is the POST /jobs/estimate-cost payload.
type EstimateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// CostEstimate is the backend's suggested budget for a job draft.
type CostEstimate struct {
	SuggestedBudget float64 `json:"suggested_budget"`
	EstimatedHours  float64 `json:"estimated_hours"`
	Multiplier      float64 `json:"multiplier_applied"`
}

// CuratedFreelancer is a recommended candidate for a job.
type CuratedFreelancer struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Region     string   `json:"region"`
	Languages  []string `json:"languages"`
	Skills     []string `json:"skills"`
	MatchScore float64  `json:"match_score"`
	ResumeURL  string   `json:"resume_url"`
}

// Proposal is a freelancer's bid on a job. The freelancer_* fields are
// only present on the per-job listing; JobTitle only on the per-freelancer one.
type Proposal struct {
	ID               string  `json:"id"`
	JobID            string  `json:"job_id"`
	JobTitle         string  `json:"job_title"`
	FreelancerID     string  `json:"freelancer_id"`
	FreelancerName   string  `json:"freelancer_name"`
	FreelancerTrust  float64 `json:"freelancer_trust"`
	FreelancerResume string  `json:"freelancer_resume"`
	Price            float64 `json:"price"`
	Timeline         string  `json:"timeline"`
	Message          string  `json:"message"`
	Status           string  `json:"status"`
}

// ProposalDraft is the POST /proposals payload.
type ProposalDraft struct {
	JobID        string  `json:"job_id"`
	FreelancerID string  `json:"freelancer_id"`
	Price        float64 `json:"price"`
	Timeline     string  `json:"timeline"`
	Message      string  `json:"message"`
}
