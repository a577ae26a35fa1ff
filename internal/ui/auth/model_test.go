package auth

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/model"
)

func TestEscTogglesForms(t *testing.T) {
	m := New(100, 30)
	assert.Equal(t, ModeLogin, m.Mode())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeRegister, m.Mode())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeLogin, m.Mode())
}

func TestResetClearsPasswordOnly(t *testing.T) {
	m := New(100, 30)
	m.fb.email = "ana@example.com"
	m.fb.password = "secret"

	m.Reset(ModeLogin)
	assert.Equal(t, "ana@example.com", m.fb.email)
	assert.Empty(t, m.fb.password)
}

func TestSubmitLogin(t *testing.T) {
	m := New(100, 30)
	m.fb.email = " ana@example.com "
	m.fb.password = "pw"

	cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Equal(t, LoginSubmitMsg{Email: "ana@example.com", Password: "pw"}, cmd())
}

func TestSubmitRegisterFreelancerDefaults(t *testing.T) {
	m := New(100, 30)
	m.mode = ModeRegister
	m.fb.name = "Ana"
	m.fb.email = "ana@example.com"
	m.fb.password = "pw"
	m.fb.role = string(model.RoleFreelancer)
	m.fb.skills = "Go, React"

	msg, ok := m.submit()().(RegisterSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "React"}, msg.Registration.Skills)
	assert.InDelta(t, 500, msg.Registration.MinRate, 0.001)
	assert.Equal(t, "India", msg.Registration.Region)
}

func TestSubmitRegisterClientSkipsFreelancerFields(t *testing.T) {
	m := New(100, 30)
	m.mode = ModeRegister
	m.fb.name = "Acme"
	m.fb.role = string(model.RoleClient)
	m.fb.skills = "ignored"

	msg := m.submit()().(RegisterSubmitMsg)
	assert.Equal(t, model.RoleClient, msg.Registration.Role)
	assert.Empty(t, msg.Registration.Skills)
	assert.Zero(t, msg.Registration.MinRate)
}
