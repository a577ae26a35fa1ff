// Package cards adapts marketplace records to bubbles/list items.
package cards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
)

// JobItem wraps a model.Job so it can be used in a bubbles/list.
type JobItem struct {
	Job model.Job
}

func (i JobItem) FilterValue() string { return i.Job.Title }

func (i JobItem) Title() string {
	return fmt.Sprintf("%s  %s", i.Job.Title, theme.PriceStyle.Render(ui.Rupees(i.Job.Budget)))
}

// Description returns a short summary line for the list.
func (i JobItem) Description() string {
	parts := []string{}
	if i.Job.MatchScore > 0 {
		parts = append(parts, theme.MatchStyle.Render(fmt.Sprintf("%.0f%% Match", i.Job.MatchScore)))
	}
	region := i.Job.Region
	if region == "" {
		region = "India"
	}
	parts = append(parts, region)
	if i.Job.MatchReason != "" {
		parts = append(parts, "✨ "+i.Job.MatchReason)
	} else if i.Job.Description != "" {
		parts = append(parts, ui.Truncate(i.Job.Description, 80))
	}
	return strings.Join(parts, " | ")
}

// ContractItem wraps a model.Contract.
type ContractItem struct {
	Contract model.Contract
}

func (i ContractItem) FilterValue() string { return i.Contract.Title() }

func (i ContractItem) Title() string {
	return fmt.Sprintf("%s  %s", i.Contract.Title(), theme.PriceStyle.Render(ui.Rupees(i.Contract.Price)))
}

func (i ContractItem) Description() string {
	status := theme.StatusStyle(i.Contract.Status).Render(strings.ToUpper(i.Contract.Status))
	return i.Contract.ID + " " + status
}

// ProposalItem wraps a model.Proposal. On a job's proposal list it shows
// the freelancer; on a freelancer's own list it shows the job.
type ProposalItem struct {
	Proposal      model.Proposal
	ForFreelancer bool
}

func (i ProposalItem) FilterValue() string { return i.Proposal.JobTitle }

func (i ProposalItem) Title() string {
	p := i.Proposal
	if i.ForFreelancer {
		status := theme.StatusStyle(p.Status).Render(strings.ToUpper(p.Status))
		return p.JobTitle + " " + status
	}
	return fmt.Sprintf("%s  %s", p.FreelancerName, theme.PriceStyle.Render(ui.Rupees(p.Price)))
}

func (i ProposalItem) Description() string {
	p := i.Proposal
	if i.ForFreelancer {
		return fmt.Sprintf("Budget: %s | Timeline: %s", ui.Rupees(p.Price), p.Timeline)
	}
	return fmt.Sprintf("Trust Score: %.0f | %s | %s", p.FreelancerTrust, p.Timeline, ui.Truncate(p.Message, 60))
}

// FreelancerItem wraps a curated freelancer recommendation.
type FreelancerItem struct {
	Freelancer model.CuratedFreelancer
}

func (i FreelancerItem) FilterValue() string { return i.Freelancer.Name }

func (i FreelancerItem) Title() string {
	f := i.Freelancer
	return fmt.Sprintf("%s  %s", f.Name, theme.MatchStyle.Render(fmt.Sprintf("%.0f%% Match", f.MatchScore)))
}

func (i FreelancerItem) Description() string {
	f := i.Freelancer
	langs := f.Languages
	if len(langs) == 0 {
		langs = []string{"English"}
	}
	return fmt.Sprintf("%s | %s | %s", f.Region, strings.Join(langs, ", "), strings.Join(f.Skills, " "))
}

// NewList builds a list styled like the rest of the application.
func NewList(title string, width, height int) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.ColorBlue).
		BorderForeground(theme.ColorBlue)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.ColorGray).
		BorderForeground(theme.ColorBlue)

	l := list.New([]list.Item{}, delegate, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle
	l.Styles.NoItems = lipgloss.NewStyle().Foreground(theme.ColorGray).PaddingLeft(2)
	return l
}

// Jobs converts jobs to list items.
func Jobs(jobs []model.Job) []list.Item {
	items := make([]list.Item, len(jobs))
	for i, j := range jobs {
		items[i] = JobItem{Job: j}
	}
	return items
}

// Contracts converts contracts to list items.
func Contracts(contracts []model.Contract) []list.Item {
	items := make([]list.Item, len(contracts))
	for i, c := range contracts {
		items[i] = ContractItem{Contract: c}
	}
	return items
}

// Proposals converts proposals to list items.
func Proposals(proposals []model.Proposal, forFreelancer bool) []list.Item {
	items := make([]list.Item, len(proposals))
	for i, p := range proposals {
		items[i] = ProposalItem{Proposal: p, ForFreelancer: forFreelancer}
	}
	return items
}

// Freelancers converts curated freelancers to list items.
func Freelancers(fs []model.CuratedFreelancer) []list.Item {
	items := make([]list.Item, len(fs))
	for i, f := range fs {
		items[i] = FreelancerItem{Freelancer: f}
	}
	return items
}
