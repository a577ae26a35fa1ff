package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/store"
	"github.com/nhle/worklance/tests/testutil"
)

func TestPrefsRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "worklance_user", `{"user_id":"u1"}`))
	v, ok, err := s.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"user_id":"u1"}`, v)

	require.NoError(t, s.Set(ctx, "worklance_user", `{"user_id":"u2"}`))
	v, _, err = s.Get(ctx, "worklance_user")
	require.NoError(t, err)
	assert.Equal(t, `{"user_id":"u2"}`, v)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "worklance_dark", "true"))
	require.NoError(t, s.Delete(ctx, "worklance_dark"))
	require.NoError(t, s.Delete(ctx, "worklance_dark"))

	_, ok, err := s.Get(ctx, "worklance_dark")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReopenKeepsValuesAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "worklance.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "worklance_dark", "true"))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "worklance_dark")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}
