package ui

// Navigation requests emitted by screens and handled by the root model.

// OpenJobMsg asks to show the job detail screen.
type OpenJobMsg struct {
	JobID string
}

// OpenContractMsg asks to show the contract detail screen.
type OpenContractMsg struct {
	ContractID string
}

// BackMsg asks to return to the dashboard.
type BackMsg struct{}
