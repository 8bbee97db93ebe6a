package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// feedFixture is a populated graph for feed composition tests:
// alice follows bob and carol; eve posts but is not followed.
type feedFixture struct {
	db    *gorm.DB
	alice *models.User
	bob   *models.User
	carol *models.User
	eve   *models.User
}

func newFeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	db := newFeedDB(t)

	f := &feedFixture{db: db}
	for name, dest := range map[string]**models.User{
		"alice": &f.alice, "bob": &f.bob, "carol": &f.carol, "eve": &f.eve,
	} {
		u := &models.User{Username: name, Email: name + "@example.com", Password: "hashed"}
		require.NoError(t, db.Create(u).Error)
		*dest = u
	}

	require.NoError(t, db.Create(&models.Follow{FollowerID: f.alice.ID, FollowingID: f.bob.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: f.alice.ID, FollowingID: f.carol.ID}).Error)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Post{UserID: f.bob.ID, Content: "hello", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Post{UserID: f.carol.ID, Content: "world", CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Post{UserID: f.eve.ID, Content: "spam", CreatedAt: base.Add(2 * time.Minute)}).Error)

	return f
}

func feedContents(page *models.FeedPage) []string {
	out := make([]string, 0, len(page.Posts))
	for _, p := range page.Posts {
		out = append(out, p.Content)
	}
	return out
}

func TestFeedService_ComposesFollowedAuthorsNewestFirst(t *testing.T) {
	f := newFeedFixture(t)
	svc := NewFeedService(f.db)

	page, err := svc.GetFeed(context.Background(), f.alice.ID, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"world", "hello"}, feedContents(page),
		"only followed authors appear, newest first")
	assert.Equal(t, int64(2), page.TotalCount)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
	assert.Equal(t, "carol", page.Posts[0].User.Username, "authors are preloaded")
}

func TestFeedService_HiddenAuthorIsSuppressed(t *testing.T) {
	f := newFeedFixture(t)
	require.NoError(t, f.db.Create(&models.UserAction{
		UserID: f.alice.ID, TargetUserID: f.bob.ID, Kind: models.ActionHide,
	}).Error)
	svc := NewFeedService(f.db)

	page, err := svc.GetFeed(context.Background(), f.alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"world"}, feedContents(page))
	assert.Equal(t, int64(1), page.TotalCount, "suppressed posts do not count toward the total")
}

func TestFeedService_BlockedAuthorIsSuppressed(t *testing.T) {
	f := newFeedFixture(t)
	require.NoError(t, f.db.Create(&models.UserAction{
		UserID: f.alice.ID, TargetUserID: f.carol.ID, Kind: models.ActionBlock,
	}).Error)
	svc := NewFeedService(f.db)

	page, err := svc.GetFeed(context.Background(), f.alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, feedContents(page))
}

func TestFeedService_SuppressionOnlyAffectsTheActor(t *testing.T) {
	f := newFeedFixture(t)
	// Bob follows carol and hides her; alice's feed is untouched.
	require.NoError(t, f.db.Create(&models.Follow{FollowerID: f.bob.ID, FollowingID: f.carol.ID}).Error)
	require.NoError(t, f.db.Create(&models.UserAction{
		UserID: f.bob.ID, TargetUserID: f.carol.ID, Kind: models.ActionHide,
	}).Error)
	svc := NewFeedService(f.db)

	alicePage, err := svc.GetFeed(context.Background(), f.alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"world", "hello"}, feedContents(alicePage))

	bobPage, err := svc.GetFeed(context.Background(), f.bob.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, bobPage.Posts)
}

func TestFeedService_Pagination(t *testing.T) {
	f := newFeedFixture(t)
	svc := NewFeedService(f.db)
	ctx := context.Background()

	page1, err := svc.GetFeed(ctx, f.alice.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"world"}, feedContents(page1))
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrevious)
	assert.Equal(t, int64(2), page1.TotalCount)

	page2, err := svc.GetFeed(ctx, f.alice.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, feedContents(page2))
	assert.False(t, page2.HasNext)
	assert.True(t, page2.HasPrevious)

	// Beyond the last page: empty posts, intact metadata.
	page3, err := svc.GetFeed(ctx, f.alice.ID, 3, 1)
	require.NoError(t, err)
	assert.Empty(t, page3.Posts)
	assert.False(t, page3.HasNext)
	assert.True(t, page3.HasPrevious)
	assert.Equal(t, int64(2), page3.TotalCount)
}

func TestFeedService_ValidatesPaging(t *testing.T) {
	f := newFeedFixture(t)
	svc := NewFeedService(f.db)
	ctx := context.Background()

	_, err := svc.GetFeed(ctx, f.alice.ID, 0, 10)
	assertValidationError(t, err)

	_, err = svc.GetFeed(ctx, f.alice.ID, 1, 0)
	assertValidationError(t, err)

	_, err = svc.GetFeed(ctx, f.alice.ID, -1, -1)
	assertValidationError(t, err)
}

func TestFeedService_EmptyWhenFollowingNobody(t *testing.T) {
	f := newFeedFixture(t)
	svc := NewFeedService(f.db)

	// Eve follows nobody.
	page, err := svc.GetFeed(context.Background(), f.eve.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.TotalCount)
	assert.False(t, page.HasNext)
}

func TestFeedService_EmptyWhenEveryAuthorSuppressed(t *testing.T) {
	f := newFeedFixture(t)
	require.NoError(t, f.db.Create(&models.UserAction{
		UserID: f.alice.ID, TargetUserID: f.bob.ID, Kind: models.ActionHide,
	}).Error)
	require.NoError(t, f.db.Create(&models.UserAction{
		UserID: f.alice.ID, TargetUserID: f.carol.ID, Kind: models.ActionBlock,
	}).Error)
	svc := NewFeedService(f.db)

	page, err := svc.GetFeed(context.Background(), f.alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.TotalCount)
}

func TestFeedService_FolloweeWithNoPosts(t *testing.T) {
	db := newFeedDB(t)
	viewer := &models.User{Username: "viewer", Email: "viewer@example.com", Password: "hashed"}
	quiet := &models.User{Username: "quiet", Email: "quiet@example.com", Password: "hashed"}
	require.NoError(t, db.Create(viewer).Error)
	require.NoError(t, db.Create(quiet).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: viewer.ID, FollowingID: quiet.ID}).Error)

	svc := NewFeedService(db)
	page, err := svc.GetFeed(context.Background(), viewer.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.TotalCount)
}
