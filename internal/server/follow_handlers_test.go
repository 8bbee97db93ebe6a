package server

import (
	"io"
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUser(t *testing.T) {
	t.Run("creates a follow edge", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)
		createUser(t, s, "bob", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/users/bob/follow",
			authToken(t, s, alice), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, s.db.Model(&models.Follow{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("following twice keeps one edge", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)
		createUser(t, s, "bob", strongPassword)
		token := authToken(t, s, alice)

		for range 2 {
			resp, err := app.Test(authedRequest(http.MethodPost, "/api/users/bob/follow", token, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}

		var count int64
		require.NoError(t, s.db.Model(&models.Follow{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("cannot follow yourself", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/users/alice/follow",
			authToken(t, s, alice), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "SELF_REFERENCE", body.Code)
	})

	t.Run("unknown target", func(t *testing.T) {
		s, app := newTestServer(t)
		alice := createUser(t, s, "alice", strongPassword)

		resp, err := app.Test(authedRequest(http.MethodPost, "/api/users/ghost/follow",
			authToken(t, s, alice), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUnfollowUser(t *testing.T) {
	s, app := newTestServer(t)
	alice := createUser(t, s, "alice", strongPassword)
	bob := createUser(t, s, "bob", strongPassword)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)
	token := authToken(t, s, alice)

	resp, err := app.Test(authedRequest(http.MethodPost, "/api/users/bob/unfollow", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)

	// Unfollowing again is a no-op.
	resp, err = app.Test(authedRequest(http.MethodPost, "/api/users/bob/unfollow", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// So is unfollowing yourself: no self edge can exist.
	resp, err = app.Test(authedRequest(http.MethodPost, "/api/users/alice/unfollow", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFollowerListings(t *testing.T) {
	s, app := newTestServer(t)
	alice := createUser(t, s, "alice", strongPassword)
	bob := createUser(t, s, "bob", strongPassword)
	carol := createUser(t, s, "carol", strongPassword)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/alice/followers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var followers []models.UserSummary
	decodeBody(t, resp, &followers)
	assert.Len(t, followers, 2)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/users/alice/following", nil))
	require.NoError(t, err)
	var following []models.UserSummary
	decodeBody(t, resp, &following)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/users/ghost/followers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowerListings_ExposeOnlyPublicFields(t *testing.T) {
	s, app := newTestServer(t)
	alice := createUser(t, s, "alice", strongPassword)
	bob := createUser(t, s, "bob", strongPassword)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/alice/followers", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	// These listings are unauthenticated; account fields must not leak.
	assert.NotContains(t, string(body), `"email"`)
	assert.NotContains(t, string(body), bob.Email)
	assert.Contains(t, string(body), `"username":"bob"`)
}
