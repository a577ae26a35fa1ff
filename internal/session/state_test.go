package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/session"
	"github.com/nhle/worklance/tests/testutil"
)

func TestRestoreWithoutSession(t *testing.T) {
	st := session.New(testutil.NewTestStore(t), logging.Nop())

	require.NoError(t, st.Restore(context.Background()))
	assert.False(t, st.LoggedIn())
	assert.Nil(t, st.User())
	assert.False(t, st.DarkMode())
}

func TestSignInSurvivesRestart(t *testing.T) {
	db := testutil.NewTestStore(t)
	ctx := context.Background()

	st := session.New(db, logging.Nop())
	require.NoError(t, st.SignIn(ctx, model.Session{ID: "u1", Name: "Ana", Role: model.RoleClient}))
	_, err := st.ToggleDarkMode(ctx)
	require.NoError(t, err)

	restarted := session.New(db, logging.Nop())
	require.NoError(t, restarted.Restore(ctx))
	require.True(t, restarted.LoggedIn())
	assert.Equal(t, "u1", restarted.UserID())
	assert.True(t, restarted.User().IsClient())
	assert.True(t, restarted.DarkMode())
}

func TestSignOutClearsStorage(t *testing.T) {
	db := testutil.NewTestStore(t)
	ctx := context.Background()

	st := session.New(db, logging.Nop())
	require.NoError(t, st.SignIn(ctx, model.Session{UserID: "u1", Role: model.RoleFreelancer}))
	st.SetActiveContract("c1")

	require.NoError(t, st.SignOut(ctx))
	assert.False(t, st.LoggedIn())
	assert.Empty(t, st.ActiveContractID())

	_, ok, err := db.Get(ctx, session.UserKey)
	require.NoError(t, err)
	assert.False(t, ok)

	restarted := session.New(db, logging.Nop())
	require.NoError(t, restarted.Restore(ctx))
	assert.False(t, restarted.LoggedIn())
}

func TestCorruptSessionIsDiscarded(t *testing.T) {
	db := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, db.Set(ctx, session.UserKey, "{not json"))

	st := session.New(db, logging.Nop())
	require.NoError(t, st.Restore(ctx))
	assert.False(t, st.LoggedIn())

	_, ok, err := db.Get(ctx, session.UserKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateUserMerges(t *testing.T) {
	db := testutil.NewTestStore(t)
	ctx := context.Background()
	st := session.New(db, logging.Nop())

	name := "Ana Maria"
	assert.ErrorIs(t, st.UpdateUser(ctx, model.ProfileUpdate{Name: &name}), session.ErrNoSession)

	require.NoError(t, st.SignIn(ctx, model.Session{UserID: "u1", Name: "Ana", Role: model.RoleFreelancer}))
	require.NoError(t, st.UpdateUser(ctx, model.ProfileUpdate{Name: &name, Skills: []string{"go"}}))
	assert.Equal(t, "Ana Maria", st.User().Name)

	restarted := session.New(db, logging.Nop())
	require.NoError(t, restarted.Restore(ctx))
	assert.Equal(t, "Ana Maria", restarted.User().Name)
	assert.Equal(t, []string{"go"}, restarted.User().Skills)
}

func TestSignInRequiresID(t *testing.T) {
	st := session.New(testutil.NewTestStore(t), logging.Nop())
	assert.Error(t, st.SignIn(context.Background(), model.Session{Name: "nobody"}))
	assert.False(t, st.LoggedIn())
}
