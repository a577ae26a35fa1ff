package credential

import (
	"context"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	v := NewVault(keyring.NewArrayKeyring(nil))
	ctx := context.Background()

	_, ok, err := v.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.Set(ctx, "worklance_user", `{"user_id":"u1"}`))
	got, ok, err := v.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"user_id":"u1"}`, got)

	require.NoError(t, v.Delete(ctx, "worklance_user"))
	require.NoError(t, v.Delete(ctx, "worklance_user"))
	_, ok, err = v.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.False(t, ok)
}
