package profile

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/ui"
)

func TestSetProfilePrefills(t *testing.T) {
	m := New(100, 40)
	assert.False(t, m.Loaded())

	m.SetProfile(model.Profile{
		Name:     "Ana",
		Role:     model.RoleFreelancer,
		Skills:   []string{"Go", "SQL"},
		MinRate:  750,
		Language: "Tamil",
	})

	require.True(t, m.Loaded())
	assert.Equal(t, "Ana", m.fb.name)
	assert.Equal(t, "Go, SQL", m.fb.skills)
	assert.Equal(t, "750", m.fb.minRate)
	assert.Equal(t, "Tamil", m.fb.languages)
}

func TestSubmitFreelancer(t *testing.T) {
	m := New(100, 40)
	m.SetProfile(model.Profile{Name: "Ana", Role: model.RoleFreelancer})
	m.fb.skills = "Go, React"
	m.fb.minRate = "900"
	m.fb.region = " Kerala "

	msg, ok := m.submit()().(SubmitMsg)
	require.True(t, ok)
	u := msg.Update
	require.NotNil(t, u.MinRate)
	assert.InDelta(t, 900, *u.MinRate, 0.001)
	assert.Equal(t, []string{"Go", "React"}, u.Skills)
	assert.Equal(t, "Kerala", *u.Region)
	assert.Nil(t, u.CompanyBio)
}

func TestSubmitClient(t *testing.T) {
	m := New(100, 40)
	m.SetProfile(model.Profile{Name: "Acme", Role: model.RoleClient, CompanyBio: "We build"})

	msg := m.submit()().(SubmitMsg)
	require.NotNil(t, msg.Update.CompanyBio)
	assert.Equal(t, "We build", *msg.Update.CompanyBio)
	assert.Nil(t, msg.Update.MinRate)
	assert.Nil(t, msg.Update.Skills)
}

func TestEscBeforeLoadGoesBack(t *testing.T) {
	m := New(100, 40)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.BackMsg{}, cmd())
}
