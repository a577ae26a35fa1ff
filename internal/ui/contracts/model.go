package contracts

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/worklance/internal/keys"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/theme"
	"github.com/nhle/worklance/internal/ui"
	"github.com/nhle/worklance/internal/ui/cards"
)

// Model lists every contract of the signed-in user.
type Model struct {
	list   list.Model
	count  int
	loaded bool
	keys   *keys.KeyMap
}

func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		list: cards.NewList("My Contracts", width, height),
		keys: k,
	}
}

// SetContracts replaces the list contents.
func (m *Model) SetContracts(cs []model.Contract) {
	m.list.SetItems(cards.Contracts(cs))
	m.list.ResetSelected()
	m.count = len(cs)
	m.loaded = true
}

// Clear forgets the loaded contracts.
func (m *Model) Clear() {
	m.list.SetItems(nil)
	m.count = 0
	m.loaded = false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Back):
			return m, func() tea.Msg { return ui.BackMsg{} }
		case key.Matches(k, m.keys.Select):
			if it, ok := m.list.SelectedItem().(cards.ContractItem); ok {
				id := it.Contract.ID
				return m, func() tea.Msg { return ui.OpenContractMsg{ContractID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return theme.MutedStyle.Render("Loading contracts...")
	}
	if m.count == 0 {
		return theme.TitleStyle.Render("My Contracts") + "\n" +
			theme.MutedStyle.Render("No agreements found yet.")
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
