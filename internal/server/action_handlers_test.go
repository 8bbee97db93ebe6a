package server

import (
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUserAction(t *testing.T) {
	t.Run("records HIDE", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)
		bob := createUser(t, s, "bob", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/actions/bob",
			authToken(t, s, alice), map[string]string{"action": "HIDE"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var action models.UserAction
		require.NoError(t, s.db.First(&action).Error)
		assert.Equal(t, models.ActionHide, action.Kind)
		assert.Equal(t, alice.ID, action.UserID)
		assert.Equal(t, bob.ID, action.TargetUserID)
	})

	t.Run("a later action replaces the earlier one", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)
		createUser(t, s, "bob", strongPassword)
		token := authToken(t, s, alice)

		for _, kind := range []string{"HIDE", "BLOCK"} {
			resp, err := app.Test(authedRequest(http.MethodPost, "/api/actions/bob",
				token, map[string]string{"action": kind}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}

		var actions []models.UserAction
		require.NoError(t, s.db.Find(&actions).Error)
		require.Len(t, actions, 1)
		assert.Equal(t, models.ActionBlock, actions[0].Kind)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)
		createUser(t, s, "bob", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/actions/bob",
			authToken(t, s, alice), map[string]string{"action": "MUTE"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	})

	t.Run("cannot act on yourself", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/actions/alice",
			authToken(t, s, alice), map[string]string{"action": "BLOCK"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown target", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/actions/ghost",
			authToken(t, s, alice), map[string]string{"action": "HIDE"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRemoveUserAction(t *testing.T) {
	s, app := newTestServer(t)
	alice := createUser(t, s, "alice", strongPassword)
	bob := createUser(t, s, "bob", strongPassword)
	require.NoError(t, s.db.Create(&models.UserAction{
		UserID: alice.ID, TargetUserID: bob.ID, Kind: models.ActionHide,
	}).Error)
	token := authToken(t, s, alice)

	resp, err := app.Test(authedRequest(http.MethodDelete, "/api/actions/bob", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.UserAction{}).Count(&count).Error)
	assert.Zero(t, count)

	// Clearing again is a no-op.
	resp, err = app.Test(authedRequest(http.MethodDelete, "/api/actions/bob", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Clearing toward yourself is a no-op too: no self action can exist.
	resp, err = app.Test(authedRequest(http.MethodDelete, "/api/actions/alice", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListUserActions(t *testing.T) {
	s, app := newTestServer(t)
	alice := createUser(t, s, "alice", strongPassword)
	bob := createUser(t, s, "bob", strongPassword)
	carol := createUser(t, s, "carol", strongPassword)
	require.NoError(t, s.db.Create(&models.UserAction{
		UserID: alice.ID, TargetUserID: bob.ID, Kind: models.ActionHide,
	}).Error)
	require.NoError(t, s.db.Create(&models.UserAction{
		UserID: alice.ID, TargetUserID: carol.ID, Kind: models.ActionBlock,
	}).Error)
	// Another user's actions must not leak into the listing.
	require.NoError(t, s.db.Create(&models.UserAction{
		UserID: bob.ID, TargetUserID: carol.ID, Kind: models.ActionHide,
	}).Error)

	resp, err := app.Test(authedRequest(http.MethodGet, "/api/actions",
		authToken(t, s, alice), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var actions []models.UserAction
	decodeBody(t, resp, &actions)
	require.Len(t, actions, 2)
	for _, a := range actions {
		assert.Equal(t, alice.ID, a.UserID)
		assert.NotEmpty(t, a.Target.Username)
	}
}
