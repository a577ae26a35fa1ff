package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryOnlyHidesLatest(t *testing.T) {
	m := New()
	require.NotNil(t, m.Show("Escrow funded!", false))
	first := m.seq
	m.Error("Release failed")

	m, _ = m.Update(expiredMsg{seq: first})
	assert.Equal(t, "Release failed", m.Text())
	assert.True(t, m.IsError())

	m, _ = m.Update(expiredMsg{seq: m.seq})
	assert.Empty(t, m.Text())
}
