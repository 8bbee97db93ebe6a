package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knownUsersRepo(users ...*models.User) *userRepoStub {
	byName := make(map[string]*models.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return byName[username], nil
	}
	return repo
}

func TestRelationshipService_Follow(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("follows by username", func(t *testing.T) {
		t.Parallel()
		var gotFollower, gotFollowing uint
		follows := noopFollowRepo()
		follows.upsertFn = func(_ context.Context, followerID, followingID uint) error {
			gotFollower, gotFollowing = followerID, followingID
			return nil
		}
		svc := NewRelationshipService(knownUsersRepo(alice, bob), follows, noopActionRepo())

		require.NoError(t, svc.Follow(context.Background(), alice.ID, "bob"))
		assert.Equal(t, alice.ID, gotFollower)
		assert.Equal(t, bob.ID, gotFollowing)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		err := svc.Follow(context.Background(), alice.ID, "ghost")
		assertNotFoundError(t, err)
	})

	t.Run("self follow", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		err := svc.Follow(context.Background(), alice.ID, "alice")
		assertSelfReferenceError(t, err)
	})
}

func TestRelationshipService_Unfollow(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("removes the edge", func(t *testing.T) {
		t.Parallel()
		deleted := false
		follows := noopFollowRepo()
		follows.deleteFn = func(_ context.Context, followerID, followingID uint) error {
			deleted = true
			assert.Equal(t, alice.ID, followerID)
			assert.Equal(t, bob.ID, followingID)
			return nil
		}
		svc := NewRelationshipService(knownUsersRepo(alice, bob), follows, noopActionRepo())
		require.NoError(t, svc.Unfollow(context.Background(), alice.ID, "bob"))
		assert.True(t, deleted)
	})

	t.Run("self unfollow is a no-op", func(t *testing.T) {
		t.Parallel()
		var gotFollower, gotFollowing uint
		follows := noopFollowRepo()
		follows.deleteFn = func(_ context.Context, followerID, followingID uint) error {
			gotFollower, gotFollowing = followerID, followingID
			return nil
		}
		svc := NewRelationshipService(knownUsersRepo(alice), follows, noopActionRepo())
		require.NoError(t, svc.Unfollow(context.Background(), alice.ID, "alice"))
		// No self edge can exist, so the delete matches nothing.
		assert.Equal(t, alice.ID, gotFollower)
		assert.Equal(t, alice.ID, gotFollowing)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		err := svc.Unfollow(context.Background(), alice.ID, "ghost")
		assertNotFoundError(t, err)
	})
}

func TestRelationshipService_SetAction(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("records HIDE", func(t *testing.T) {
		t.Parallel()
		var gotKind models.ActionKind
		actions := noopActionRepo()
		actions.setFn = func(_ context.Context, _, _ uint, kind models.ActionKind) error {
			gotKind = kind
			return nil
		}
		svc := NewRelationshipService(knownUsersRepo(alice, bob), noopFollowRepo(), actions)
		require.NoError(t, svc.SetAction(context.Background(), alice.ID, "bob", models.ActionHide))
		assert.Equal(t, models.ActionHide, gotKind)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()
		resolved := false
		users := knownUsersRepo(alice, bob)
		users.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			resolved = true
			return bob, nil
		}
		svc := NewRelationshipService(users, noopFollowRepo(), noopActionRepo())
		err := svc.SetAction(context.Background(), alice.ID, "bob", models.ActionKind("MUTE"))
		assertValidationError(t, err)
		assert.False(t, resolved, "kind is validated before hitting the database")
	})

	t.Run("rejects self action", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		err := svc.SetAction(context.Background(), alice.ID, "alice", models.ActionBlock)
		assertSelfReferenceError(t, err)
	})

	t.Run("unknown target", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		err := svc.SetAction(context.Background(), alice.ID, "ghost", models.ActionHide)
		assertNotFoundError(t, err)
	})
}

func TestRelationshipService_RemoveAction(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	t.Run("removes the action", func(t *testing.T) {
		t.Parallel()
		removed := false
		actions := noopActionRepo()
		actions.removeFn = func(_ context.Context, userID, targetID uint) error {
			removed = true
			assert.Equal(t, alice.ID, userID)
			assert.Equal(t, bob.ID, targetID)
			return nil
		}
		svc := NewRelationshipService(knownUsersRepo(alice, bob), noopFollowRepo(), actions)
		require.NoError(t, svc.RemoveAction(context.Background(), alice.ID, "bob"))
		assert.True(t, removed)
	})

	t.Run("self remove is a no-op", func(t *testing.T) {
		t.Parallel()
		svc := NewRelationshipService(knownUsersRepo(alice), noopFollowRepo(), noopActionRepo())
		require.NoError(t, svc.RemoveAction(context.Background(), alice.ID, "alice"))
	})
}

func TestRelationshipService_FollowersFollowing(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	follows := noopFollowRepo()
	follows.followersFn = func(_ context.Context, userID uint) ([]models.UserSummary, error) {
		assert.Equal(t, alice.ID, userID)
		return []models.UserSummary{bob.Summary()}, nil
	}
	follows.followingFn = func(_ context.Context, userID uint) ([]models.UserSummary, error) {
		return []models.UserSummary{}, nil
	}
	svc := NewRelationshipService(knownUsersRepo(alice, bob), follows, noopActionRepo())

	followers, err := svc.Followers(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].Username)

	following, err := svc.Following(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, following)

	_, err = svc.Followers(context.Background(), "ghost")
	assertNotFoundError(t, err)
}
