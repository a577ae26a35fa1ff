package contracts

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui"
)

func TestEmptyState(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.SetContracts(nil)
	assert.Contains(t, m.View(), "No agreements found yet.")
}

func TestEnterOpensContract(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.SetContracts([]model.Contract{
		{ID: "c1", Status: model.ContractStatusActive},
		{ID: "c2", Status: model.ContractStatusCompleted},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.OpenContractMsg{ContractID: "c2"}, cmd())
}
