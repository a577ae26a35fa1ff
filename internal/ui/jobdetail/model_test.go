package jobdetail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui"
)

func sample() Data {
	return Data{
		Job: model.Job{ID: "job_logo", Title: "Logo", Budget: 3000, Status: model.JobStatusOpen},
		Proposals: []model.Proposal{
			{ID: "p1", JobID: "job_logo", FreelancerID: "f1", FreelancerName: "Ravi", Price: 2800},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestClientHireNeedsConfirmation(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.SetData(sample(), model.RoleClient, 0)
	assert.False(t, m.Typing())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirming)
	assert.Contains(t, m.View(), "Hire Ravi")

	m, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	hire, ok := cmd().(HireMsg)
	require.True(t, ok)
	assert.Equal(t, "f1", hire.Proposal.FreelancerID)
	assert.Equal(t, "job_logo", hire.Job.ID)
	assert.Nil(t, m.confirming)
}

func TestClientHireDenied(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.SetData(sample(), model.RoleClient, 0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirming)
}

func TestClientWithoutProposals(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	d := sample()
	d.Proposals = nil
	m.SetData(d, model.RoleClient, 0)
	assert.Contains(t, m.View(), "No proposals yet.")
}

func TestFreelancerProposalDefaultsToBudget(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.SetData(sample(), model.RoleFreelancer, 500)
	assert.True(t, m.Typing())
	assert.Contains(t, m.View(), "Your minimum rate: ₹500")

	m.fb.timeline = "2 weeks"
	m.fb.message = " I can do it "
	msg := m.submit()().(ProposalSubmitMsg)
	assert.Equal(t, "job_logo", msg.Draft.JobID)
	assert.InDelta(t, 3000, msg.Draft.Price, 0.001)
	assert.Equal(t, "I can do it", msg.Draft.Message)
}

func TestEscGoesBack(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 40)
	m.SetData(sample(), model.RoleFreelancer, 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.BackMsg{}, cmd())
}
