package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/cards"
)

func sample() Data {
	return Data{
		Jobs: []model.Job{
			{ID: "job_a", Title: "Logo", Status: model.JobStatusOpen},
			{ID: "job_b", Title: "Site", Status: model.JobStatusInProgress},
		},
		Contracts: []model.Contract{
			{ID: "c1", Status: model.ContractStatusActive},
			{ID: "c2", Status: model.ContractStatusCompleted},
			{ID: "c3", Status: model.ContractStatusInEscrow},
		},
		Proposals: []model.Proposal{{ID: "p1", JobID: "job_a", JobTitle: "Logo", Status: "pending"}},
	}
}

func TestClientCounters(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleClient)
	m.SetData(sample())

	assert.Len(t, m.ActiveContracts(), 2)
	require.Len(t, m.VisibleJobs(), 1)
	assert.Equal(t, "job_a", m.VisibleJobs()[0].ID)
	assert.Contains(t, m.View(), "Active contracts")
}

func TestFreelancerSeesAllMatchedJobs(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleFreelancer)
	m.SetData(sample())
	assert.Len(t, m.VisibleJobs(), 2)
}

func TestEnterOpensSelectedJob(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleFreelancer)
	m.SetData(sample())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.OpenJobMsg{JobID: "job_a"}, cmd())
}

func TestTabCyclesToContracts(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleFreelancer)
	m.SetData(sample())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	it, ok := m.list.SelectedItem().(cards.ContractItem)
	require.True(t, ok)
	assert.Equal(t, "c1", it.Contract.ID)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ui.OpenContractMsg{ContractID: "c1"}, cmd())
}

func TestSearchFlow(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleFreelancer)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.Typing())

	for _, r := range "go" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Typing())
	require.NotNil(t, cmd)
	assert.Equal(t, SearchMsg{Query: "go"}, cmd())

	m.SetSearchResults("go", []model.Job{{ID: "job_go", Title: "Go API"}})
	assert.Equal(t, `Results for "go"`, m.list.Title)
}

func TestClientCannotSearch(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.Reset(model.RoleClient)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.False(t, m.Typing())
}
